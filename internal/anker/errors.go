package anker

import "fmt"

// failKind classifies why a request produced no usable response. The
// classification feeds logs and diagnostics only; callers always receive the
// canonical failure ApiResult.
type failKind int

const (
	failCrypto failKind = iota + 1
	failTransport
	failStatus
	failDecode
)

func (k failKind) String() string {
	switch k {
	case failCrypto:
		return "crypto"
	case failTransport:
		return "transport"
	case failStatus:
		return "status"
	case failDecode:
		return "decode"
	}
	return "unknown"
}

// requestError carries the classified cause of a failed operation.
type requestError struct {
	kind   failKind
	op     string
	status int    // HTTP status, set for failStatus
	body   string // raw response body, set for failStatus
	err    error
}

func (e *requestError) Error() string {
	if e.kind == failStatus {
		return fmt.Sprintf("%s: unexpected status %d", e.op, e.status)
	}
	return fmt.Sprintf("%s: %s: %v", e.op, e.kind, e.err)
}

func (e *requestError) Unwrap() error { return e.err }

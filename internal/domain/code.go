package domain

import "strconv"

// ReturnCode is the application-level code carried in every API response.
//
// The remote service introduces codes this client has never seen, so
// ReturnCode is a plain integer with names for the known members rather than
// a closed enum. Unknown values are preserved and round-trip untouched.
type ReturnCode int

// Known return codes.
const (
	Success         ReturnCode = 0
	InvalidLogin    ReturnCode = 26006
	CaptchaRequired ReturnCode = 100032
)

var codeNames = map[ReturnCode]string{
	Success:         "SUCCESS",
	InvalidLogin:    "INVALID_LOGIN",
	CaptchaRequired: "CAPTCHA_REQUIRED",
}

// String returns the known name for c, or its decimal form.
func (c ReturnCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return strconv.Itoa(int(c))
}

// Known reports whether c is one of the named codes.
func (c ReturnCode) Known() bool {
	_, ok := codeNames[c]
	return ok
}

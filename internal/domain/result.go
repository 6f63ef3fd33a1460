package domain

import "encoding/json"

// ApiResult is the uniform outcome of every remote operation.
//
// When a response body was parsed, all four fields come from it and Data is
// the opaque payload the service returned. When the request failed before a
// body could be parsed, the zero value is returned instead; Code is nil
// there so callers can tell "no code" apart from code 0.
type ApiResult struct {
	Success bool
	Data    json.RawMessage
	Code    *ReturnCode
	Msg     string
}

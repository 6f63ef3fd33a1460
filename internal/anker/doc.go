// Package anker is the client for the AnkerMake cloud account service. It
// owns the login handshake, the session it yields, and the device-list
// query.
//
// Remote operations return a domain.ApiResult and never an error: transport
// problems, unexpected statuses, and malformed bodies are logged and
// collapse to the zero ApiResult. An HTTP 200 with a non-zero code is a
// normal result whose Code the caller inspects (for example to detect
// CAPTCHA_REQUIRED and retry the login with a challenge answer).
package anker

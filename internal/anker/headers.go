package anker

import (
	"net/http"
	"strconv"
	"time"
)

// Fixed header values the desktop client presents on every request.
const (
	headerModelType = "PC"
	headerUserAgent = "Mozilla/5.0"
	headerAppName   = "anker_make"
)

// applyHeaders sets the standard request headers. The auth token is attached
// only to authenticated calls; the login request precedes authentication and
// omits it.
func (c *Client) applyHeaders(h http.Header, withAuth bool) {
	zone, offset := localZone()
	h.Set("Model_type", headerModelType)
	h.Set("User-Agent", headerUserAgent)
	h.Set("app_name", headerAppName)
	h.Set("timeoffset", strconv.Itoa(offset))
	h.Set("timezone", zone)
	h.Set("content-type", "application/json")
	if withAuth {
		h.Set("x-auth-token", c.session.AuthToken)
	}
}

// localZone returns the local zone name and its UTC offset in seconds.
func localZone() (name string, offsetSeconds int) {
	return time.Now().Zone()
}

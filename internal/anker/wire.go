package anker

import (
	"encoding/json"

	"anchormake/internal/domain"
)

// ServerPublicKey is the fixed EC public key the login service publishes for
// the password handshake, as a hex-encoded uncompressed P-256 point.
const ServerPublicKey = "04c5c00c4f8d1197cc7c3167c52bf7acb054d722f0ef08dcd7e0883236e0d72a3868d9750cb47fa4619248f3d83f0f662671dadc6e2d31c2f41db0161651c7c076"

const (
	// DefaultBaseURL is the production account service.
	DefaultBaseURL = "https://make-app.ankermake.com"

	loginPath      = "/v2/passport/login"
	deviceListPath = "/v1/app/query_fdm_list"
)

// loginRequest is the body of POST /v2/passport/login. login_id and
// verify_code are reserved by the service and always empty.
type loginRequest struct {
	Ab               string           `json:"ab"`
	Answer           string           `json:"answer"`
	CaptchaID        string           `json:"captcha_id"`
	ClientSecretInfo clientSecretInfo `json:"client_secret_info"`
	Email            string           `json:"email"`
	LoginID          string           `json:"login_id"`
	Password         string           `json:"password"`
	TimeZone         int              `json:"time_zone"`
	VerifyCode       string           `json:"verify_code"`
}

// clientSecretInfo carries the ephemeral public point the server needs to
// recompute the shared secret.
type clientSecretInfo struct {
	PublicKey string `json:"public_key"`
}

// deviceListRequest is the body of POST /v1/app/query_fdm_list. The empty
// filters and fixed paging mirror what the desktop app sends.
type deviceListRequest struct {
	DeviceSN  string `json:"device_sn"`
	Num       int    `json:"num"`
	OrderBy   string `json:"orderby"`
	Page      int    `json:"page"`
	StationSN string `json:"station_sn"`
	TimeZone  int    `json:"time_zone"`
}

// wireResponse is the raw {code, msg, data} envelope. Pointers distinguish a
// missing key from a zero value; a response missing any of the three is
// malformed.
type wireResponse struct {
	Code *domain.ReturnCode `json:"code"`
	Msg  *string            `json:"msg"`
	Data json.RawMessage    `json:"data"`
}

// apiResponse is a validated envelope with all keys present.
type apiResponse struct {
	Code domain.ReturnCode
	Msg  string
	Data json.RawMessage
}

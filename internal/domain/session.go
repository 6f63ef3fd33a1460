package domain

// LoginData is the `data` object of a successful login response, exactly as
// the service sends it. It is the blob a caller persists to reconstruct a
// client later without re-authenticating.
type LoginData struct {
	UserID           string           `json:"user_id"`
	AuthToken        string           `json:"auth_token"`
	TokenExpiresAt   int64            `json:"token_expires_at"`
	NickName         string           `json:"nick_name"`
	InvitationCode   string           `json:"invitation_code"`
	GeoKey           string           `json:"geo_key"`
	ServerSecretInfo ServerSecretInfo `json:"server_secret_info"`
}

// ServerSecretInfo nests the server's EC public key in the login response.
type ServerSecretInfo struct {
	PublicKey string `json:"public_key"`
}

// Session converts the wire blob into a Session value.
func (d LoginData) Session() Session {
	return Session{
		UserID:          d.UserID,
		AuthToken:       d.AuthToken,
		TokenExpiresAt:  d.TokenExpiresAt,
		NickName:        d.NickName,
		InvitationCode:  d.InvitationCode,
		GeoKey:          d.GeoKey,
		ServerPublicKey: d.ServerSecretInfo.PublicKey,
	}
}

// Session is the identity state obtained from a successful login. The fields
// are either all unset (before login) or all set together; a login that does
// not succeed leaves the Session untouched.
type Session struct {
	UserID          string
	AuthToken       string
	TokenExpiresAt  int64 // epoch seconds; informational, never enforced
	NickName        string
	InvitationCode  string
	GeoKey          string
	ServerPublicKey string // hex-encoded uncompressed EC point
}

// Valid reports whether the session was populated by a login.
func (s Session) Valid() bool { return s.AuthToken != "" }

// Expired reports whether the token expiry has passed the given epoch
// seconds. Nothing in the client invalidates a session on its own; checking
// expiry is the caller's job.
func (s Session) Expired(now int64) bool {
	return s.TokenExpiresAt != 0 && now >= s.TokenExpiresAt
}

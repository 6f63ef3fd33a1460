package domain

import "context"

// AccountClient is the remote account API surface callers consume. Remote
// operations never return an error; every failure mode collapses into the
// ApiResult shape.
type AccountClient interface {
	// Login authenticates and, on success, replaces the client's session.
	Login(ctx context.Context, captchaID, answer string) ApiResult
	// DeviceList queries the printers registered to the account.
	DeviceList(ctx context.Context) ApiResult
	// Session returns the current session state.
	Session() Session
}

// SessionStore persists the restorable login blob between runs.
type SessionStore interface {
	SaveLogin(passphrase string, data LoginData) error
	LoadLogin(passphrase string) (LoginData, bool, error)
	ClearLogin() error
}

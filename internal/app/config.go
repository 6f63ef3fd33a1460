package app

import (
	"net/http"

	"go.uber.org/zap"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string // config directory, e.g. $HOME/.anchormake
	BaseURL string // account service base URL; empty means production
	Email   string // account email
	Region  string // two-letter region code, sent as "ab"

	HTTP *http.Client       // optional; defaults to http.DefaultClient
	Log  *zap.SugaredLogger // optional; defaults to a nop logger
}

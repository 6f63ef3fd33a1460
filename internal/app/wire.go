package app

import (
	"net/http"

	"go.uber.org/zap"

	"anchormake/internal/anker"
	"anchormake/internal/domain"
	"anchormake/internal/store"
)

// Wire bundles the store, logger, and client factories for the CLI.
type Wire struct {
	Cfg   Config
	Store domain.SessionStore
	Log   *zap.SugaredLogger
	HTTP  *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := cfg.Log
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Wire{
		Cfg:   cfg,
		Store: store.NewSessionFileStore(cfg.Home),
		Log:   logger,
		HTTP:  httpClient,
	}
}

// NewClient returns an unauthenticated account client for the configured
// account and the given password.
func (w *Wire) NewClient(password string) *anker.Client {
	return anker.New(w.clientConfig(password))
}

// RestoreClient rebuilds an authenticated client from a persisted login
// blob.
func (w *Wire) RestoreClient(data domain.LoginData) *anker.Client {
	return anker.NewFromLogin(w.clientConfig(""), data)
}

func (w *Wire) clientConfig(password string) anker.Config {
	return anker.Config{
		Email:    w.Cfg.Email,
		Password: password,
		Region:   w.Cfg.Region,
		BaseURL:  w.Cfg.BaseURL,
		HTTP:     w.HTTP,
		Log:      w.Log,
	}
}

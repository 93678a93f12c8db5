package app

import (
	"io"
	"log/slog"

	"ltoaccount/internal/domain"
	"ltoaccount/internal/protocol/boxcipher"
	"ltoaccount/internal/services/identity"
	"ltoaccount/internal/store"
	"ltoaccount/internal/util/redactlog"
)

// Wire bundles the stores and collaborators the CLI needs.
type Wire struct {
	Config   Config
	Keys     domain.KeyStore
	Identity *identity.Service
	Cipher   *boxcipher.Cipher
	Log      *slog.Logger
}

// NewWire constructs the dependency graph from cfg. Logs go to logOut.
func NewWire(cfg Config, logOut io.Writer) *Wire {
	handler := slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: redactlog.ParseLevel(cfg.LogLevel),
	})
	keys := store.NewKeyFileStore(cfg.Home, cfg.Keystore)
	return &Wire{
		Config:   cfg,
		Keys:     keys,
		Identity: identity.New(keys, cfg.ChainID),
		Cipher:   boxcipher.New(nil),
		Log:      slog.New(redactlog.WrapHandler(handler)),
	}
}

package app

import (
	"errors"
	"fmt"

	"ltoaccount/internal/account"
	"ltoaccount/internal/codec"
	"ltoaccount/internal/crypto"
	"ltoaccount/internal/domain"
	"ltoaccount/internal/store"
)

// ErrAccountExists is returned by Init when a keystore is already present.
var ErrAccountExists = errors.New("account already initialised")

// App runs account operations against the wired stores.
type App struct {
	*Wire
}

// New returns an App over w.
func New(w *Wire) *App { return &App{Wire: w} }

// Init generates fresh signing and encryption keys, derives the address for
// the configured chain and saves everything under passphrase.
func (a *App) Init(passphrase string, overwrite bool) (*account.Account, error) {
	if fs, ok := a.Keys.(*store.KeyFileStore); ok && fs.Exists() && !overwrite {
		return nil, fmt.Errorf("%w at %s", ErrAccountExists, fs.Path())
	}
	stored, fp, err := a.Identity.GenerateAccount(passphrase)
	if err != nil {
		return nil, err
	}
	acct := account.FromStored(stored, account.WithCipher(a.Cipher))
	addr, _ := acct.Address(codec.Base58)
	a.Log.Info("account initialised",
		"address", addr,
		"fingerprint", fp,
		"network", string(rune(a.Config.ChainID)),
	)
	return acct, nil
}

// Load decrypts the local account.
func (a *App) Load(passphrase string) (*account.Account, error) {
	stored, err := a.Identity.LoadAccount(passphrase)
	if err != nil {
		return nil, err
	}
	a.Log.Debug("account loaded", "keys", stored.Keys.String())
	return account.FromStored(stored, account.WithCipher(a.Cipher)), nil
}

// Peer builds a foreign account from encoded public keys. Any argument may
// be empty; a non-empty address must be valid for the configured chain.
func (a *App) Peer(address, signKey, encryptKey string) (*account.Account, error) {
	enc := a.Config.Encoding
	var (
		addr []byte
		opts []domain.KeyOption
		err  error
	)
	if address != "" {
		if addr, err = codec.Decode(address, enc); err != nil {
			return nil, fmt.Errorf("peer address: %w", err)
		}
		if err = crypto.ValidateAddress(addr, a.Config.ChainID); err != nil {
			return nil, fmt.Errorf("peer address: %w", err)
		}
	}
	if signKey != "" {
		raw, err := codec.Decode(signKey, enc)
		if err != nil {
			return nil, fmt.Errorf("peer sign key: %w", err)
		}
		pair, err := domain.NewSigningKeyPair(raw, nil)
		if err != nil {
			return nil, fmt.Errorf("peer sign key: %w", err)
		}
		opts = append(opts, domain.WithSigning(pair))
	}
	if encryptKey != "" {
		raw, err := codec.Decode(encryptKey, enc)
		if err != nil {
			return nil, fmt.Errorf("peer encryption key: %w", err)
		}
		pair, err := domain.NewEncryptionKeyPair(raw, nil)
		if err != nil {
			return nil, fmt.Errorf("peer encryption key: %w", err)
		}
		opts = append(opts, domain.WithEncryption(pair))
	}
	return account.New(addr, domain.NewKeyMaterial(opts...), account.WithCipher(a.Cipher)), nil
}

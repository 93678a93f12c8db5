package identity

import (
	"fmt"
	"unicode"

	"ltoaccount/internal/crypto"
	"ltoaccount/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service manages account key creation and access using a backing store.
//
// The stored account contains:
//   - Ed25519 key pair for signing messages and events.
//   - X25519 key pair for pairwise box encryption.
//   - The address derived from the signing key for the configured chain.
type Service struct {
	store domain.KeyStore
	chain domain.ChainID
}

// New returns an identity service backed by the given store. Addresses are
// derived for chain.
func New(s domain.KeyStore, chain domain.ChainID) *Service {
	return &Service{store: s, chain: chain}
}

// GenerateAccount creates new key material, saves it encrypted with the
// passphrase, and returns it plus a short fingerprint of the signing key.
func (s *Service) GenerateAccount(
	passphrase string,
) (domain.StoredAccount, domain.Fingerprint, error) {
	if !IsSecurePassphrase(passphrase) {
		return domain.StoredAccount{}, "", ErrWeakPassphrase
	}

	sign, err := crypto.GenerateEd25519()
	if err != nil {
		return domain.StoredAccount{}, "", fmt.Errorf("generate sign keys: %w", err)
	}
	enc, err := crypto.GenerateX25519()
	if err != nil {
		return domain.StoredAccount{}, "", fmt.Errorf("generate encryption keys: %w", err)
	}

	acct := domain.StoredAccount{
		Address: crypto.DeriveAddress(sign.Public, s.chain),
		Keys:    domain.NewKeyMaterial(domain.WithSigning(sign), domain.WithEncryption(enc)),
	}
	if err := s.store.SaveAccount(passphrase, acct); err != nil {
		return domain.StoredAccount{}, "", fmt.Errorf("save account: %w", err)
	}
	return acct, crypto.Fingerprint(sign.Public.Slice()), nil
}

// LoadAccount decrypts and returns the local account.
func (s *Service) LoadAccount(passphrase string) (domain.StoredAccount, error) {
	return s.store.LoadAccount(passphrase)
}

// FingerprintAccount returns a short fingerprint of the local public sign key.
func (s *Service) FingerprintAccount(passphrase string) (domain.Fingerprint, error) {
	acct, err := s.store.LoadAccount(passphrase)
	if err != nil {
		return "", err
	}
	defer acct.Keys.Wipe()
	pair, ok := acct.Keys.Signing()
	if !ok {
		return "", &domain.MissingKeyError{Op: "fingerprint account", Key: "public sign key"}
	}
	return crypto.Fingerprint(pair.Public.Slice()), nil
}

// IsSecurePassphrase enforces a basic strength policy.
func IsSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len([]rune(passphrase)) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

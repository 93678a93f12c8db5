package account

import (
	"errors"

	"ltoaccount/internal/codec"
	"ltoaccount/internal/crypto"
	"ltoaccount/internal/domain"
	"ltoaccount/internal/protocol/boxcipher"
	"ltoaccount/internal/protocol/signing"
)

// Account is a ledger identity.
type Account struct {
	address []byte
	keys    domain.KeyMaterial
	cipher  *boxcipher.Cipher
}

// Option configures an Account.
type Option func(*Account)

// WithCipher overrides the box cipher, e.g. to inject a nonce source in tests.
func WithCipher(c *boxcipher.Cipher) Option {
	return func(a *Account) { a.cipher = c }
}

// New returns an account for address backed by keys. address may be nil.
func New(address []byte, keys domain.KeyMaterial, opts ...Option) *Account {
	a := &Account{
		address: append([]byte(nil), address...),
		keys:    keys,
	}
	if len(address) == 0 {
		a.address = nil
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.cipher == nil {
		a.cipher = boxcipher.New(nil)
	}
	return a
}

// FromStored rebuilds the account loaded from a key store.
func FromStored(s domain.StoredAccount, opts ...Option) *Account {
	return New(s.Address, s.Keys, opts...)
}

// FromAddress returns a foreign account known only by its address.
func FromAddress(address []byte) *Account {
	return New(address, domain.NewKeyMaterial())
}

// Keys returns the account's key material.
func (a *Account) Keys() domain.KeyMaterial { return a.keys }

// Address returns the encoded address, or false when none is stored.
func (a *Account) Address(enc codec.Encoding) (string, bool) {
	if a.address == nil {
		return "", false
	}
	return codec.Encode(a.address, enc), true
}

// PublicSigningKey returns the encoded public signing key, if any.
func (a *Account) PublicSigningKey(enc codec.Encoding) (string, bool) {
	return a.keys.PublicSigningKey(enc)
}

// PublicEncryptionKey returns the encoded public encryption key, if any.
func (a *Account) PublicEncryptionKey(enc codec.Encoding) (string, bool) {
	return a.keys.PublicEncryptionKey(enc)
}

// DeriveAddress computes the address of the public signing key on chain.
// It does not change the stored address.
func (a *Account) DeriveAddress(chain domain.ChainID) ([]byte, error) {
	pair, ok := a.keys.Signing()
	if !ok {
		return nil, &domain.MissingKeyError{Op: "derive address", Key: "public sign key"}
	}
	return crypto.DeriveAddress(pair.Public, chain), nil
}

// Sign returns the encoded detached signature of message.
func (a *Account) Sign(message []byte, enc codec.Encoding) (string, error) {
	sig, err := signing.Sign(a.keys, message)
	if err != nil {
		return "", err
	}
	return codec.Encode(sig, enc), nil
}

// Verify decodes signature and checks it against message.
func (a *Account) Verify(signature string, message []byte, enc codec.Encoding) (bool, error) {
	raw, err := codec.Decode(signature, enc)
	if err != nil {
		return false, err
	}
	return signing.Verify(a.keys, raw, message)
}

// EncryptFor seals message for recipient. The result is the raw wire format
// (sealed box followed by the nonce).
func (a *Account) EncryptFor(recipient *Account, message []byte) ([]byte, error) {
	return a.cipher.EncryptFor(a.keys, recipient.keys, message)
}

// EncryptForEncoded is EncryptFor with the ciphertext encoded for transport.
func (a *Account) EncryptForEncoded(recipient *Account, message []byte, enc codec.Encoding) (string, error) {
	ct, err := a.EncryptFor(recipient, message)
	if err != nil {
		return "", err
	}
	return codec.Encode(ct, enc), nil
}

// DecryptFrom opens a ciphertext sender sealed for this account. On
// authentication failure the error names the sender's address.
func (a *Account) DecryptFrom(sender *Account, ciphertext []byte) ([]byte, error) {
	msg, err := a.cipher.DecryptFrom(a.keys, sender.keys, ciphertext)
	var decErr *domain.DecryptError
	if errors.As(err, &decErr) {
		return nil, &domain.DecryptError{Counterparty: sender.label()}
	}
	return msg, err
}

// DecryptFromEncoded decodes text with enc and calls DecryptFrom.
func (a *Account) DecryptFromEncoded(sender *Account, text string, enc codec.Encoding) ([]byte, error) {
	ct, err := codec.Decode(text, enc)
	if err != nil {
		return nil, err
	}
	return a.DecryptFrom(sender, ct)
}

// SignEvent sets the event's sign key, signature and hash, in that order,
// and returns the same event. The event is left untouched when the account
// cannot sign.
func (a *Account) SignEvent(ev domain.SignableEvent) (domain.SignableEvent, error) {
	pair, ok := a.keys.Signing()
	if !ok || !pair.HasSecret() {
		return ev, &domain.MissingKeyError{Op: "sign event", Key: "secret sign key"}
	}

	signKey, _ := a.PublicSigningKey(codec.Base58)
	ev.SetSignKey(signKey)

	msg, err := ev.CanonicalMessage()
	if err != nil {
		return ev, err
	}
	sig, err := a.Sign(msg, codec.Base58)
	if err != nil {
		return ev, err
	}
	ev.SetSignature(sig)

	hash, err := ev.ComputeHash()
	if err != nil {
		return ev, err
	}
	ev.SetHash(hash)
	return ev, nil
}

// label names the account in diagnostics: its base58 address, else the
// fingerprint of its public encryption key.
func (a *Account) label() string {
	if addr, ok := a.Address(codec.Base58); ok {
		return addr
	}
	if pair, ok := a.keys.Encryption(); ok {
		return crypto.Fingerprint(pair.Public.Slice()).String()
	}
	return "unknown account"
}

// Compile-time assertion that Account implements domain.SignatureVerifier.
var _ domain.SignatureVerifier = (*Account)(nil)

package types

import (
	"crypto/ed25519"
	"fmt"

	"ltoaccount/internal/codec"
	"ltoaccount/internal/util/memzero"
)

// SigningKeyPair is an Ed25519 key pair. A nil Secret means only the public
// half is known.
type SigningKeyPair struct {
	Public Ed25519Public
	Secret *Ed25519Private
}

// HasSecret reports whether the secret half is present.
func (p SigningKeyPair) HasSecret() bool { return p.Secret != nil }

// NewSigningKeyPair builds a signing pair from raw bytes. secret may be nil,
// a 32-byte seed or a 64-byte expanded private key.
func NewSigningKeyPair(public, secret []byte) (SigningKeyPair, error) {
	if len(public) != Ed25519PublicSize {
		return SigningKeyPair{}, fmt.Errorf("ed25519 public: want %d bytes, got %d", Ed25519PublicSize, len(public))
	}
	var pair SigningKeyPair
	copy(pair.Public[:], public)

	switch len(secret) {
	case 0:
		return pair, nil
	case Ed25519SeedSize:
		expanded := ed25519.NewKeyFromSeed(secret)
		pair.Secret = new(Ed25519Private)
		copy(pair.Secret[:], expanded)
		memzero.Zero(expanded)
	case Ed25519PrivateSize:
		pair.Secret = new(Ed25519Private)
		copy(pair.Secret[:], secret)
	default:
		return SigningKeyPair{}, fmt.Errorf("ed25519 secret: want %d or %d bytes, got %d",
			Ed25519SeedSize, Ed25519PrivateSize, len(secret))
	}
	return pair, nil
}

// EncryptionKeyPair is an X25519 key pair. A nil Secret means only the public
// half is known.
type EncryptionKeyPair struct {
	Public X25519Public
	Secret *X25519Private
}

// HasSecret reports whether the secret half is present.
func (p EncryptionKeyPair) HasSecret() bool { return p.Secret != nil }

// NewEncryptionKeyPair builds an encryption pair from raw bytes. secret may be nil.
func NewEncryptionKeyPair(public, secret []byte) (EncryptionKeyPair, error) {
	if len(public) != X25519KeySize {
		return EncryptionKeyPair{}, fmt.Errorf("x25519 public: want %d bytes, got %d", X25519KeySize, len(public))
	}
	var pair EncryptionKeyPair
	copy(pair.Public[:], public)
	if len(secret) == 0 {
		return pair, nil
	}
	if len(secret) != X25519KeySize {
		return EncryptionKeyPair{}, fmt.Errorf("x25519 secret: want %d bytes, got %d", X25519KeySize, len(secret))
	}
	pair.Secret = new(X25519Private)
	copy(pair.Secret[:], secret)
	return pair, nil
}

// KeyMaterial bundles the optional signing and encryption pairs backing an
// account. The zero value knows no keys.
type KeyMaterial struct {
	signing    *SigningKeyPair
	encryption *EncryptionKeyPair
}

// KeyOption configures NewKeyMaterial.
type KeyOption func(*KeyMaterial)

// WithSigning attaches a signing pair.
func WithSigning(p SigningKeyPair) KeyOption {
	return func(km *KeyMaterial) { km.signing = &p }
}

// WithEncryption attaches an encryption pair.
func WithEncryption(p EncryptionKeyPair) KeyOption {
	return func(km *KeyMaterial) { km.encryption = &p }
}

// NewKeyMaterial returns key material holding the given pairs.
func NewKeyMaterial(opts ...KeyOption) KeyMaterial {
	var km KeyMaterial
	for _, opt := range opts {
		opt(&km)
	}
	return km
}

// Signing returns the signing pair, if any.
func (km KeyMaterial) Signing() (SigningKeyPair, bool) {
	if km.signing == nil {
		return SigningKeyPair{}, false
	}
	return *km.signing, true
}

// Encryption returns the encryption pair, if any.
func (km KeyMaterial) Encryption() (EncryptionKeyPair, bool) {
	if km.encryption == nil {
		return EncryptionKeyPair{}, false
	}
	return *km.encryption, true
}

// PublicSigningKey returns the encoded public signing key, or false when no
// signing pair is held.
func (km KeyMaterial) PublicSigningKey(enc codec.Encoding) (string, bool) {
	p, ok := km.Signing()
	if !ok {
		return "", false
	}
	return codec.Encode(p.Public.Slice(), enc), true
}

// PublicEncryptionKey returns the encoded public encryption key, or false
// when no encryption pair is held.
func (km KeyMaterial) PublicEncryptionKey(enc codec.Encoding) (string, bool) {
	p, ok := km.Encryption()
	if !ok {
		return "", false
	}
	return codec.Encode(p.Public.Slice(), enc), true
}

// PublicOnly returns a copy of km with both secret halves dropped.
func (km KeyMaterial) PublicOnly() KeyMaterial {
	var out KeyMaterial
	if p, ok := km.Signing(); ok {
		out.signing = &SigningKeyPair{Public: p.Public}
	}
	if p, ok := km.Encryption(); ok {
		out.encryption = &EncryptionKeyPair{Public: p.Public}
	}
	return out
}

// Wipe zeroes every secret half held by km. Copies of km share the same
// secrets, so callers wipe only when the material is no longer used anywhere.
func (km KeyMaterial) Wipe() {
	if km.signing != nil && km.signing.Secret != nil {
		km.signing.Secret.Wipe()
	}
	if km.encryption != nil && km.encryption.Secret != nil {
		km.encryption.Secret.Wipe()
	}
}

// String describes which halves are present without revealing any secret.
func (km KeyMaterial) String() string {
	sign, enc := "none", "none"
	if p, ok := km.Signing(); ok {
		sign = "public"
		if p.HasSecret() {
			sign = "public+secret"
		}
	}
	if p, ok := km.Encryption(); ok {
		enc = "public"
		if p.HasSecret() {
			enc = "public+secret"
		}
	}
	return fmt.Sprintf("KeyMaterial{signing: %s, encryption: %s}", sign, enc)
}

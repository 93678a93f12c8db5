package types

import (
	"errors"
	"fmt"
	"log/slog"

	"ltoaccount/internal/util/memzero"
)

// Key sizes shared by the signing and box schemes.
const (
	Ed25519PublicSize  = 32
	Ed25519SeedSize    = 32
	Ed25519PrivateSize = 64
	X25519KeySize      = 32
)

const redacted = "[REDACTED]"

// errSecretMarshal is returned when a secret key reaches a general-purpose encoder.
var errSecretMarshal = errors.New("secret key material is not serialisable")

// X25519Public is a Curve25519 public key.
type X25519Public [32]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// X25519Private is a Curve25519 private key.
//
// It never prints or marshals its contents; use Slice for explicit export.
type X25519Private [32]byte

// Slice returns the key as a []byte.
func (k *X25519Private) Slice() []byte { return k[:] }

// Wipe zeroes the key.
func (k *X25519Private) Wipe() { memzero.Zero32((*[32]byte)(k)) }

func (X25519Private) String() string               { return redacted }
func (X25519Private) Format(f fmt.State, _ rune)   { _, _ = f.Write([]byte(redacted)) }
func (X25519Private) LogValue() slog.Value         { return slog.StringValue(redacted) }
func (X25519Private) MarshalText() ([]byte, error) { return nil, errSecretMarshal }
func (X25519Private) MarshalJSON() ([]byte, error) { return nil, errSecretMarshal }

// Ed25519Public is an Ed25519 signing public key.
type Ed25519Public [32]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// Ed25519Private is an Ed25519 signing private key (ed25519.PrivateKey layout).
//
// It never prints or marshals its contents; use Slice for explicit export.
type Ed25519Private [64]byte

// Slice returns the key as a []byte.
func (k *Ed25519Private) Slice() []byte { return k[:] }

// Wipe zeroes the key.
func (k *Ed25519Private) Wipe() { memzero.Zero64((*[64]byte)(k)) }

func (Ed25519Private) String() string               { return redacted }
func (Ed25519Private) Format(f fmt.State, _ rune)   { _, _ = f.Write([]byte(redacted)) }
func (Ed25519Private) LogValue() slog.Value         { return slog.StringValue(redacted) }
func (Ed25519Private) MarshalText() ([]byte, error) { return nil, errSecretMarshal }
func (Ed25519Private) MarshalJSON() ([]byte, error) { return nil, errSecretMarshal }

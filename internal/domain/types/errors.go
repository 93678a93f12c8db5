package types

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey is matched by every *MissingKeyError.
	ErrMissingKey = errors.New("missing key")
	// ErrDecoding is matched by every *DecodingError.
	ErrDecoding = errors.New("malformed ciphertext")
	// ErrDecrypt is matched by every *DecryptError.
	ErrDecrypt = errors.New("decryption failed")
)

// MissingKeyError reports an operation that needs a key half the key
// material does not hold.
type MissingKeyError struct {
	Op  string // e.g. "sign message"
	Key string // e.g. "secret sign key"
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("unable to %s; no %s", e.Op, e.Key)
}

// Is reports whether target is ErrMissingKey.
func (e *MissingKeyError) Is(target error) bool { return target == ErrMissingKey }

// DecodingError reports a ciphertext that cannot be split into payload and nonce.
type DecodingError struct {
	Length int
	Need   int
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("ciphertext too short: %d bytes, need at least %d", e.Length, e.Need)
}

// Is reports whether target is ErrDecoding.
func (e *DecodingError) Is(target error) bool { return target == ErrDecoding }

// DecryptError reports an authentication failure while opening a box.
// Counterparty names the other account for diagnostics.
type DecryptError struct {
	Counterparty string
}

func (e *DecryptError) Error() string {
	if e.Counterparty == "" {
		return "failed to decrypt message"
	}
	return "failed to decrypt message from " + e.Counterparty
}

// Is reports whether target is ErrDecrypt.
func (e *DecryptError) Is(target error) bool { return target == ErrDecrypt }

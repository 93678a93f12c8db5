package crypto

import (
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/box"

	"ltoaccount/internal/domain"
	"ltoaccount/internal/util/memzero"
)

// Sizes of the X25519-XSalsa20-Poly1305 box scheme.
const (
	BoxNonceSize    = 24
	BoxKeySize      = 32
	BoxOverheadSize = box.Overhead
)

// BoxNonce is a box nonce. It must never repeat for a given key pair.
type BoxNonce [BoxNonceSize]byte

// NewBoxNonce reads a fresh nonce from r.
func NewBoxNonce(r io.Reader) (BoxNonce, error) {
	var n BoxNonce
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return n, fmt.Errorf("read nonce: %w", err)
	}
	return n, nil
}

// SharedKey runs the box key agreement between priv and peer.
// Callers wipe the result when done.
func SharedKey(priv *domain.X25519Private, peer domain.X25519Public) *[BoxKeySize]byte {
	shared := new([BoxKeySize]byte)
	box.Precompute(shared, (*[32]byte)(&peer), (*[32]byte)(priv))
	return shared
}

// Seal authenticates and encrypts msg under priv and peer, appending the
// sealed box to out.
func Seal(out, msg []byte, nonce *BoxNonce, priv *domain.X25519Private, peer domain.X25519Public) []byte {
	shared := SharedKey(priv, peer)
	defer memzero.Zero32(shared)
	return box.SealAfterPrecomputation(out, msg, (*[BoxNonceSize]byte)(nonce), shared)
}

// Open verifies and decrypts sealed. ok is false when authentication fails.
func Open(out, sealed []byte, nonce *BoxNonce, priv *domain.X25519Private, peer domain.X25519Public) ([]byte, bool) {
	shared := SharedKey(priv, peer)
	defer memzero.Zero32(shared)
	return box.OpenAfterPrecomputation(out, sealed, (*[BoxNonceSize]byte)(nonce), shared)
}

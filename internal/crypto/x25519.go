package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/curve25519"

	"ltoaccount/internal/domain"
	"ltoaccount/internal/util/memzero"
)

// GenerateX25519 returns a fresh Curve25519 encryption key pair.
// The private key is clamped per RFC 7748.
func GenerateX25519() (domain.EncryptionKeyPair, error) {
	var priv [32]byte
	defer memzero.Zero32(&priv)
	if _, err := rand.Read(priv[:]); err != nil {
		return domain.EncryptionKeyPair{}, err
	}
	clamp(&priv)
	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return domain.EncryptionKeyPair{}, err
	}
	return domain.NewEncryptionKeyPair(pub, priv[:])
}

// X25519PublicFromPrivate recomputes the public half of an X25519 key.
func X25519PublicFromPrivate(priv *domain.X25519Private) (domain.X25519Public, error) {
	var out domain.X25519Public
	pb, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return out, err
	}
	copy(out[:], pb)
	return out, nil
}

func clamp(k *[32]byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}

package crypto

import (
	"crypto/ed25519"
	"crypto/rand"

	"ltoaccount/internal/domain"
)

// Sizes of the Ed25519 detached-signature scheme.
const (
	SignaturePublicKeySize = ed25519.PublicKeySize
	SignatureSize          = ed25519.SignatureSize
)

// GenerateEd25519 returns a new random Ed25519 signing key pair.
func GenerateEd25519() (domain.SigningKeyPair, error) {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return domain.SigningKeyPair{}, err
	}
	return domain.NewSigningKeyPair(pk, sk)
}

// SignEd25519 signs msg with priv and returns the detached signature.
func SignEd25519(priv *domain.Ed25519Private, msg []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(priv.Slice()), msg)
}

// VerifyEd25519 verifies sig over msg with pub. Inputs of the wrong length
// report false without reaching ed25519.Verify.
func VerifyEd25519(pub, msg, sig []byte) bool {
	if len(sig) != SignatureSize || len(pub) != SignaturePublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), msg, sig)
}

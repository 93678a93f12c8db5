package signing

import (
	"ltoaccount/internal/crypto"
	"ltoaccount/internal/domain"
)

// Sign returns the detached signature of message under the secret signing key.
func Sign(keys domain.KeyMaterial, message []byte) ([]byte, error) {
	pair, ok := keys.Signing()
	if !ok || !pair.HasSecret() {
		return nil, &domain.MissingKeyError{Op: "sign message", Key: "secret sign key"}
	}
	return crypto.SignEd25519(pair.Secret, message), nil
}

// Verify reports whether signature is a valid detached signature of message
// under the public signing key.
func Verify(keys domain.KeyMaterial, signature, message []byte) (bool, error) {
	pair, ok := keys.Signing()
	if !ok {
		return false, &domain.MissingKeyError{Op: "verify message", Key: "public sign key"}
	}
	return crypto.VerifyEd25519(pair.Public.Slice(), message, signature), nil
}

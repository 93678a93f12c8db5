package boxcipher

import (
	"crypto/rand"
	"fmt"
	"io"

	"ltoaccount/internal/crypto"
	"ltoaccount/internal/domain"
)

// Cipher seals and opens boxes. It holds no per-call state and is safe for
// concurrent use as long as its random source is.
type Cipher struct {
	rand io.Reader
}

// New returns a Cipher drawing nonces from r. A nil r uses crypto/rand.
func New(r io.Reader) *Cipher {
	if r == nil {
		r = rand.Reader
	}
	return &Cipher{rand: r}
}

// EncryptFor seals message from sender to recipient and appends the nonce.
func (c *Cipher) EncryptFor(sender, recipient domain.KeyMaterial, message []byte) ([]byte, error) {
	own, ok := sender.Encryption()
	if !ok || !own.HasSecret() {
		return nil, &domain.MissingKeyError{Op: "encrypt message", Key: "secret encryption key"}
	}
	peer, ok := recipient.Encryption()
	if !ok {
		return nil, &domain.MissingKeyError{Op: "encrypt message", Key: "public encryption key for recipient"}
	}

	nonce, err := crypto.NewBoxNonce(c.rand)
	if err != nil {
		return nil, fmt.Errorf("encrypt message: %w", err)
	}
	out := make([]byte, 0, len(message)+crypto.BoxOverheadSize+crypto.BoxNonceSize)
	out = crypto.Seal(out, message, &nonce, own.Secret, peer.Public)
	return append(out, nonce[:]...), nil
}

// DecryptFrom opens a ciphertext produced by sender's EncryptFor for recipient.
func (c *Cipher) DecryptFrom(recipient, sender domain.KeyMaterial, ciphertext []byte) ([]byte, error) {
	own, ok := recipient.Encryption()
	if !ok || !own.HasSecret() {
		return nil, &domain.MissingKeyError{Op: "decrypt message", Key: "secret encryption key"}
	}
	peer, ok := sender.Encryption()
	if !ok {
		return nil, &domain.MissingKeyError{Op: "decrypt message", Key: "public encryption key for sender"}
	}
	if len(ciphertext) < crypto.BoxNonceSize {
		return nil, &domain.DecodingError{Length: len(ciphertext), Need: crypto.BoxNonceSize}
	}

	split := len(ciphertext) - crypto.BoxNonceSize
	var nonce crypto.BoxNonce
	copy(nonce[:], ciphertext[split:])

	message, ok := crypto.Open(nil, ciphertext[:split], &nonce, own.Secret, peer.Public)
	if !ok {
		return nil, &domain.DecryptError{Counterparty: crypto.Fingerprint(peer.Public.Slice()).String()}
	}
	if message == nil {
		message = []byte{}
	}
	return message, nil
}

package boxcipher_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"ltoaccount/internal/crypto"
	"ltoaccount/internal/domain"
	"ltoaccount/internal/protocol/boxcipher"
)

func makeKeys(t *testing.T) domain.KeyMaterial {
	t.Helper()
	pair, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}
	return domain.NewKeyMaterial(domain.WithEncryption(pair))
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c := boxcipher.New(nil)
	alice, bob := makeKeys(t), makeKeys(t)

	for _, msg := range [][]byte{{}, []byte("hello bob"), bytes.Repeat([]byte{0xab}, 10000)} {
		ct, err := c.EncryptFor(alice, bob, msg)
		if err != nil {
			t.Fatalf("EncryptFor: %v", err)
		}
		if len(ct) != len(msg)+crypto.BoxOverheadSize+crypto.BoxNonceSize {
			t.Fatalf("unexpected ciphertext length %d for %d-byte message", len(ct), len(msg))
		}
		got, err := c.DecryptFrom(bob, alice.PublicOnly(), ct)
		if err != nil {
			t.Fatalf("DecryptFrom: %v", err)
		}
		if !bytes.Equal(got, msg) {
			t.Fatalf("plaintext mismatch: %q", got)
		}
	}
}

func TestEncryptFor_FreshNonce(t *testing.T) {
	c := boxcipher.New(nil)
	alice, bob := makeKeys(t), makeKeys(t)
	a, err := c.EncryptFor(alice, bob, []byte("same"))
	if err != nil {
		t.Fatalf("EncryptFor: %v", err)
	}
	b, err := c.EncryptFor(alice, bob, []byte("same"))
	if err != nil {
		t.Fatalf("EncryptFor: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("two encryptions of the same plaintext are identical")
	}
}

func TestEncryptFor_NonceIsAppended(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x42}, crypto.BoxNonceSize)
	c := boxcipher.New(bytes.NewReader(nonce))
	alice, bob := makeKeys(t), makeKeys(t)

	ct, err := c.EncryptFor(alice, bob, []byte("payload"))
	if err != nil {
		t.Fatalf("EncryptFor: %v", err)
	}
	if !bytes.Equal(ct[len(ct)-crypto.BoxNonceSize:], nonce) {
		t.Fatalf("nonce is not the tail of the ciphertext: %x", ct)
	}
}

func TestEncryptFor_RandomSourceFailure(t *testing.T) {
	c := boxcipher.New(bytes.NewReader(nil))
	_, err := c.EncryptFor(makeKeys(t), makeKeys(t), []byte("x"))
	if !errors.Is(err, io.EOF) {
		t.Fatalf("want wrapped io.EOF, got %v", err)
	}
}

func TestDecryptFrom_TooShort(t *testing.T) {
	c := boxcipher.New(nil)
	alice, bob := makeKeys(t), makeKeys(t)
	for _, n := range []int{0, 1, crypto.BoxNonceSize - 1} {
		_, err := c.DecryptFrom(bob, alice, make([]byte, n))
		var decErr *domain.DecodingError
		if !errors.As(err, &decErr) || !errors.Is(err, domain.ErrDecoding) {
			t.Fatalf("len %d: want DecodingError, got %v", n, err)
		}
	}
	// A bare nonce splits but cannot authenticate.
	_, err := c.DecryptFrom(bob, alice, make([]byte, crypto.BoxNonceSize))
	if !errors.Is(err, domain.ErrDecrypt) {
		t.Fatalf("nonce-only: want ErrDecrypt, got %v", err)
	}
}

func TestDecryptFrom_TamperedByteFails(t *testing.T) {
	c := boxcipher.New(nil)
	alice, bob := makeKeys(t), makeKeys(t)
	ct, err := c.EncryptFor(alice, bob, []byte("integrity matters"))
	if err != nil {
		t.Fatalf("EncryptFor: %v", err)
	}
	for i := range ct {
		tampered := append([]byte(nil), ct...)
		tampered[i] ^= 0x01
		got, err := c.DecryptFrom(bob, alice, tampered)
		if !errors.Is(err, domain.ErrDecrypt) {
			t.Fatalf("byte %d: want ErrDecrypt, got %v (plaintext %q)", i, err, got)
		}
		if got != nil {
			t.Fatalf("byte %d: plaintext returned alongside error", i)
		}
	}
}

func TestDecryptFrom_WrongKey(t *testing.T) {
	c := boxcipher.New(nil)
	alice, bob, eve := makeKeys(t), makeKeys(t), makeKeys(t)
	ct, _ := c.EncryptFor(alice, bob, []byte("for bob only"))
	_, err := c.DecryptFrom(eve, alice, ct)
	var decErr *domain.DecryptError
	if !errors.As(err, &decErr) {
		t.Fatalf("want DecryptError, got %v", err)
	}
	pair, _ := alice.Encryption()
	if decErr.Counterparty != crypto.Fingerprint(pair.Public.Slice()).String() {
		t.Fatalf("counterparty %q does not identify the sender", decErr.Counterparty)
	}
}

func TestMissingKeys(t *testing.T) {
	c := boxcipher.New(nil)
	full := makeKeys(t)
	none := domain.NewKeyMaterial()

	cases := []struct {
		name string
		run  func() error
	}{
		{"encrypt without sender keys", func() error { _, err := c.EncryptFor(none, full, []byte("x")); return err }},
		{"encrypt without sender secret", func() error { _, err := c.EncryptFor(full.PublicOnly(), full, []byte("x")); return err }},
		{"encrypt without recipient", func() error { _, err := c.EncryptFor(full, none, []byte("x")); return err }},
		{"decrypt without recipient secret", func() error { _, err := c.DecryptFrom(full.PublicOnly(), full, make([]byte, 64)); return err }},
		{"decrypt without sender", func() error { _, err := c.DecryptFrom(full, none, make([]byte, 64)); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, domain.ErrMissingKey) {
				t.Fatalf("want ErrMissingKey, got %v", err)
			}
		})
	}
}

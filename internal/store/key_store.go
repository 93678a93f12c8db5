package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"ltoaccount/internal/codec"
	"ltoaccount/internal/crypto"
	"ltoaccount/internal/domain"
	"ltoaccount/internal/util/memzero"
)

// DefaultKeyFile is the keystore file name inside the home directory.
const DefaultKeyFile = "account.json.enc"

var (
	// ErrNoAccount is returned by LoadAccount when no keystore exists yet.
	ErrNoAccount = errors.New("no account in keystore")
	// ErrKeyMismatch is returned when a stored public key does not belong to
	// its secret half.
	ErrKeyMismatch = errors.New("public key does not match secret key")
)

// keyPairRecord mirrors one key pair with base58 halves.
type keyPairRecord struct {
	PublicKey string `json:"publickey"`
	SecretKey string `json:"secretkey,omitempty"`
}

// accountRecord is the plaintext JSON sealed inside the envelope.
type accountRecord struct {
	Address string         `json:"address,omitempty"`
	Sign    *keyPairRecord `json:"sign,omitempty"`
	Encrypt *keyPairRecord `json:"encrypt,omitempty"`
}

// KeyFileStore persists the local account to a passphrase-encrypted file.
type KeyFileStore struct {
	path string
	kdf  scryptParams
	mu   sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore writing to path. A relative path is
// resolved against dir.
func NewKeyFileStore(dir, path string) *KeyFileStore {
	if path == "" {
		path = DefaultKeyFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return &KeyFileStore{path: path, kdf: defaultScrypt}
}

// Path returns the keystore file location.
func (s *KeyFileStore) Path() string { return s.path }

// SaveAccount encrypts acct under passphrase and writes it to disk.
func (s *KeyFileStore) SaveAccount(passphrase string, acct domain.StoredAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(toRecord(acct))
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	blob, err := seal(passphrase, raw, s.kdf)
	if err != nil {
		return err
	}
	return writeFile(s.path, blob, 0o600)
}

// LoadAccount reads and decrypts the account.
func (s *KeyFileStore) LoadAccount(passphrase string) (domain.StoredAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := readFile(s.path)
	if err != nil {
		return domain.StoredAccount{}, err
	}
	if blob == nil {
		return domain.StoredAccount{}, fmt.Errorf("%w at %s", ErrNoAccount, s.path)
	}
	raw, err := open(passphrase, blob)
	if err != nil {
		return domain.StoredAccount{}, err
	}
	defer memzero.Zero(raw)

	var rec accountRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.StoredAccount{}, fmt.Errorf("parse account: %w", err)
	}
	return fromRecord(rec)
}

// Exists reports whether a keystore file is present.
func (s *KeyFileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func toRecord(acct domain.StoredAccount) accountRecord {
	var rec accountRecord
	if len(acct.Address) > 0 {
		rec.Address = codec.Encode(acct.Address, codec.Base58)
	}
	if p, ok := acct.Keys.Signing(); ok {
		rec.Sign = &keyPairRecord{PublicKey: codec.Encode(p.Public.Slice(), codec.Base58)}
		if p.HasSecret() {
			rec.Sign.SecretKey = codec.Encode(p.Secret.Slice(), codec.Base58)
		}
	}
	if p, ok := acct.Keys.Encryption(); ok {
		rec.Encrypt = &keyPairRecord{PublicKey: codec.Encode(p.Public.Slice(), codec.Base58)}
		if p.HasSecret() {
			rec.Encrypt.SecretKey = codec.Encode(p.Secret.Slice(), codec.Base58)
		}
	}
	return rec
}

func fromRecord(rec accountRecord) (domain.StoredAccount, error) {
	var (
		out  domain.StoredAccount
		opts []domain.KeyOption
		err  error
	)
	if rec.Address != "" {
		if out.Address, err = codec.Decode(rec.Address, codec.Base58); err != nil {
			return domain.StoredAccount{}, fmt.Errorf("address: %w", err)
		}
	}
	if rec.Sign != nil {
		pub, secret, err := decodePair(rec.Sign)
		if err != nil {
			return domain.StoredAccount{}, fmt.Errorf("sign keys: %w", err)
		}
		pair, err := domain.NewSigningKeyPair(pub, secret)
		memzero.Zero(secret)
		if err != nil {
			return domain.StoredAccount{}, err
		}
		opts = append(opts, domain.WithSigning(pair))
	}
	if rec.Encrypt != nil {
		pub, secret, err := decodePair(rec.Encrypt)
		if err != nil {
			return domain.StoredAccount{}, fmt.Errorf("encrypt keys: %w", err)
		}
		pair, err := domain.NewEncryptionKeyPair(pub, secret)
		memzero.Zero(secret)
		if err != nil {
			return domain.StoredAccount{}, err
		}
		if pair.HasSecret() {
			derived, err := crypto.X25519PublicFromPrivate(pair.Secret)
			if err != nil {
				return domain.StoredAccount{}, fmt.Errorf("encrypt keys: %w", err)
			}
			if derived != pair.Public {
				return domain.StoredAccount{}, fmt.Errorf("encrypt keys: %w", ErrKeyMismatch)
			}
		}
		opts = append(opts, domain.WithEncryption(pair))
	}
	out.Keys = domain.NewKeyMaterial(opts...)
	return out, nil
}

func decodePair(r *keyPairRecord) (pub, secret []byte, err error) {
	if pub, err = codec.Decode(r.PublicKey, codec.Base58); err != nil {
		return nil, nil, err
	}
	if r.SecretKey == "" {
		return pub, nil, nil
	}
	if secret, err = codec.Decode(r.SecretKey, codec.Base58); err != nil {
		return nil, nil, err
	}
	return pub, secret, nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)

package crypto

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"ltoaccount/internal/domain"
)

// Layout of a derived address: version, chain id, public key hash, checksum.
const (
	AddressVersion      = 0x01
	addressHashSize     = 20
	addressChecksumSize = 4
	AddressSize         = 2 + addressHashSize + addressChecksumSize
)

var (
	// ErrBadAddress is returned by ValidateAddress for malformed addresses.
	ErrBadAddress = errors.New("invalid address")
)

// secureHash is sha256(blake2b-256(b)).
func secureHash(b []byte) [32]byte {
	inner := blake2b.Sum256(b)
	return sha256.Sum256(inner[:])
}

// DeriveAddress computes the raw address bytes for a public signing key on
// the given chain.
func DeriveAddress(pub domain.Ed25519Public, chain domain.ChainID) []byte {
	h := secureHash(pub.Slice())

	addr := make([]byte, 0, AddressSize)
	addr = append(addr, AddressVersion, byte(chain))
	addr = append(addr, h[:addressHashSize]...)

	sum := secureHash(addr)
	return append(addr, sum[:addressChecksumSize]...)
}

// ValidateAddress checks length, version, chain id and checksum of raw
// address bytes.
func ValidateAddress(addr []byte, chain domain.ChainID) error {
	if len(addr) != AddressSize {
		return fmt.Errorf("%w: want %d bytes, got %d", ErrBadAddress, AddressSize, len(addr))
	}
	if addr[0] != AddressVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrBadAddress, addr[0])
	}
	if addr[1] != byte(chain) {
		return fmt.Errorf("%w: chain id %q, want %q", ErrBadAddress, addr[1], byte(chain))
	}
	body := addr[:AddressSize-addressChecksumSize]
	sum := secureHash(body)
	if !bytes.Equal(sum[:addressChecksumSize], addr[AddressSize-addressChecksumSize:]) {
		return fmt.Errorf("%w: checksum mismatch", ErrBadAddress)
	}
	return nil
}

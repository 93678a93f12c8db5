package interfaces

import "ltoaccount/internal/codec"

// SignatureVerifier checks detached signatures against a known public key.
type SignatureVerifier interface {
	Verify(signature string, message []byte, enc codec.Encoding) (bool, error)
}

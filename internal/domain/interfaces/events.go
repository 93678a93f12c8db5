package interfaces

// SignableEvent is a ledger event an account can sign in place.
//
// The caller owns the event for the duration of a signing call; the same
// instance must not be signed concurrently.
type SignableEvent interface {
	// SetSignKey records the encoded public key of the signer.
	SetSignKey(key string)
	// CanonicalMessage returns the bytes covered by the signature. It is
	// called after SetSignKey.
	CanonicalMessage() ([]byte, error)
	// SetSignature records the encoded detached signature.
	SetSignature(sig string)
	// ComputeHash returns the event hash. It is called after SetSignature.
	ComputeHash() (string, error)
	// SetHash records the event hash.
	SetHash(hash string)
}

package types

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// ChainID is the network byte embedded in a derived address.
type ChainID byte

const (
	// MainNet is the production network identifier.
	MainNet ChainID = 'L'
	// TestNet is the public test network identifier.
	TestNet ChainID = 'T'
)

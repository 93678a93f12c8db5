package domain

import (
	interfaces "ltoaccount/internal/domain/interfaces"
	types "ltoaccount/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint       = types.Fingerprint
	ChainID           = types.ChainID
	Ed25519Public     = types.Ed25519Public
	Ed25519Private    = types.Ed25519Private
	X25519Public      = types.X25519Public
	X25519Private     = types.X25519Private
	SigningKeyPair    = types.SigningKeyPair
	EncryptionKeyPair = types.EncryptionKeyPair
	KeyMaterial       = types.KeyMaterial
	KeyOption         = types.KeyOption
	StoredAccount     = types.StoredAccount
	MissingKeyError   = types.MissingKeyError
	DecodingError     = types.DecodingError
	DecryptError      = types.DecryptError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SignableEvent     = interfaces.SignableEvent
	KeyStore          = interfaces.KeyStore
	SignatureVerifier = interfaces.SignatureVerifier
)

// Re-exported constructors, constants and sentinels.
var (
	NewSigningKeyPair    = types.NewSigningKeyPair
	NewEncryptionKeyPair = types.NewEncryptionKeyPair
	NewKeyMaterial       = types.NewKeyMaterial
	WithSigning          = types.WithSigning
	WithEncryption       = types.WithEncryption

	ErrMissingKey = types.ErrMissingKey
	ErrDecoding   = types.ErrDecoding
	ErrDecrypt    = types.ErrDecrypt
)

const (
	MainNet = types.MainNet
	TestNet = types.TestNet

	Ed25519PublicSize  = types.Ed25519PublicSize
	Ed25519PrivateSize = types.Ed25519PrivateSize
	X25519KeySize      = types.X25519KeySize
)

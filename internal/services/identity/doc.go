// Package identity creates, encrypts and loads the local account keys.
//
// It enforces passphrase policy, generates Ed25519 and X25519 key pairs,
// derives the ledger address and persists the result via domain.KeyStore.
package identity

// Package signing creates and checks detached Ed25519 signatures over the
// signing half of an account's key material.
//
// # Errors
//
// Sign returns *domain.MissingKeyError when the key material holds no secret
// signing key; Verify returns it when there is no signing pair at all.
// A signature that does not verify is reported as false, never as an error.
// Signatures or public keys of the wrong length are rejected before they
// reach the primitive.
package signing

// Package crypto exposes the primitives behind an account.
//
// Contents
//
//   - Ed25519 key generation, detached signing and length-checked
//     verification (GenerateEd25519, SignEd25519, VerifyEd25519)
//   - X25519 key generation (GenerateX25519)
//   - NaCl box key agreement, sealing and opening with 24-byte nonces
//     (NewBoxNonce, SharedKey, Seal, Open)
//   - Address derivation and validation (DeriveAddress, ValidateAddress)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Keys are passed as the fixed-size array types defined in internal/domain.
// Shared box keys are wiped before Seal and Open return.
package crypto

// Package boxcipher implements pairwise authenticated encryption between two
// accounts' X25519 keys.
//
// # Wire format
//
//	ciphertext = box_seal(message) || nonce
//
// The 24-byte nonce is always last, so the split point is len-24 regardless
// of the plaintext length. Every EncryptFor call draws a fresh nonce from the
// Cipher's random source.
//
// # Errors
//
// Missing key halves are reported as *domain.MissingKeyError, ciphertexts
// shorter than a nonce as *domain.DecodingError, and authentication failures
// as *domain.DecryptError. None of them is retried.
package boxcipher

// Package store provides file-based persistence for the local account.
//
// KeyFileStore serialises the address and key material as JSON with base58
// key halves, seals it under a scrypt-derived ChaCha20-Poly1305 key and
// writes it atomically with 0600 permissions. All methods are
// concurrency-safe via internal locking. The file typically lives under the
// configured home directory.
package store

// Package codec converts byte buffers to and from the textual encodings used
// for addresses, keys and signatures.
//
// # Encodings
//
//   - Raw      bytes reinterpreted as a string; binary-safe contexts only
//   - Base58   Bitcoin alphabet, no checksum and no version byte
//   - Base64   standard alphabet with padding
//
// Decode only checks the alphabet. Callers validate decoded lengths.
package codec

// Package event is a minimal chained ledger event that an account can sign.
//
// The canonical message is the newline-joined body, timestamp, previous hash
// and sign key. The hash is computed after signing and covers the message
// and the signature.
package event

// Package account provides the public-facing ledger identity.
//
// An Account pairs optional canonical address bytes with key material and
// exposes address and key encoding, detached signing and verification,
// pairwise box encryption, and in-place event signing. Accounts are
// immutable after construction and safe for concurrent use; the only thing
// ever mutated is the event handed to SignEvent.
package account

// Package commands defines the lto CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init         Generate signing and encryption keys and store them
//   - show         Print the address and public keys
//   - fingerprint  Print short fingerprints of the public keys
//   - sign         Sign a message
//   - verify       Verify a detached signature
//   - encrypt      Encrypt a message for a peer's public encryption key
//   - decrypt      Decrypt a message from a peer
//   - sign-event   Sign a chained event and print it as JSON
//
// # Implementation
//
// The root command loads config.yaml, applies flag overrides and builds the
// app context before any subcommand runs. Encoded inputs and outputs use
// the configured encoding (base58 by default).
package commands

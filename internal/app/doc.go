// Package app wires application dependencies for the CLI.
//
// It loads Config from config.yaml and the environment, builds the key
// store, identity service, box cipher and redacting logger into a Wire, and
// exposes account lifecycle helpers (Init, Load, Peer) on App.
package app

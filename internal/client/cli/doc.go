// Package cli provides the interactive TimeVault command-line client.
//
// It wires configuration and the gRPC API client into a small REPL. The user
// signs in by pasting an access token, then provisions a vault, deposits with
// a lock period, extends the lock and withdraws. Periods accept whole seconds
// or Go durations.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

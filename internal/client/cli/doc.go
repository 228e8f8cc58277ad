// Package cli provides the interactive RecruitAI command-line client.
//
// It wires configuration, local token storage, the HTTP API client and an
// interactive REPL for the identity flows: sign in (with the two-factor
// verification screen when the account requires it), sign up, profile view
// and update, authenticator app enrollment, and sign out.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli

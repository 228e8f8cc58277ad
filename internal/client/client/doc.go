// Package client contains client-side building blocks for the RecruitAI CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the RecruitAI backend: Login/Register/Verify2FA, CurrentUser,
//     UpdateProfile, the TOTP enrollment endpoints, and Ping.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that attaches the
//     bearer token from a TokenSource, tags every call with an X-Request-Id,
//     and maps failures to typed errors: transport problems wrap
//     ErrUnavailable, non-2xx responses become *HTTPError carrying the
//     server's "detail" message.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized. Status-specific handling goes
// through AsHTTPError.
//
// Concurrency & Contexts
//
// Implementations should be safe for concurrent use unless stated otherwise.
// All operations accept context.Context and must honor cancellation/timeouts.
package client

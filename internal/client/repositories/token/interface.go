// Package token persists the bearer token of the current session. A non-empty
// stored value always corresponds to a previously completed authentication;
// it is never written mid-challenge.
package token

import "context"

// Repository is the durable store for a single bearer token string.
// Get returns an empty string when no token is stored.
type Repository interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

package client

import (
	"context"

	"github.com/recruitai/cli/internal/client/models"
)

// LoginReply is the discriminated response of the login endpoint. Exactly one
// of the two branches is populated:
//
//   - Grant            — credentials were sufficient, the session is complete;
//   - RequiresTwoFactor — correct credentials, but a TOTP code is still
//     needed; SessionToken/Email describe the pending challenge.
type LoginReply struct {
	Grant *models.AuthGrant

	RequiresTwoFactor bool
	SessionToken      string
	Email             string
	Message           string
}

// Client is the API contract the rest of the application talks to. It never
// persists tokens itself: the active token is supplied by a TokenSource and
// stored by the auth service, keeping a single writer for that state.
type Client interface {
	Close() error

	Login(ctx context.Context, creds models.Credentials) (*LoginReply, error)
	Register(ctx context.Context, data models.RegisterData) (*models.AuthGrant, error)
	Verify2FA(ctx context.Context, sessionToken, code string) (*models.AuthGrant, error)

	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, user models.User) (*models.User, error)

	SetupTOTP(ctx context.Context) (*models.TOTPSetup, error)
	ConfirmTOTP(ctx context.Context, code string) error
	DisableTOTP(ctx context.Context, code string) error

	Ping(ctx context.Context) error
}

// TokenSource yields the bearer token to attach to authenticated requests.
// An empty string means "no token": the request goes out unauthenticated.
type TokenSource func(ctx context.Context) string

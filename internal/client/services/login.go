package services

import (
	"context"
	"fmt"

	"github.com/recruitai/cli/internal/client/client"
	"github.com/recruitai/cli/internal/client/models"
	"github.com/recruitai/cli/internal/logging"
)

// LoginOutcome is the tagged result of a credential login: either the
// session completed, or a second factor is still required. Modelling the
// two branches as distinct types keeps callers from probing optional fields.
type LoginOutcome interface {
	loginOutcome()
}

// LoginCompleted carries the terminal grant of a login without 2FA.
type LoginCompleted struct {
	Grant models.AuthGrant
}

// LoginChallenged carries the ephemeral challenge of a login that still
// needs a TOTP code. No token exists yet at this point.
type LoginChallenged struct {
	Challenge models.SessionChallenge
}

func (LoginCompleted) loginOutcome()  {}
func (LoginChallenged) loginOutcome() {}

// CredentialAuthenticator performs the password step of authentication.
// It interprets the server's login response but never stores tokens or
// users; that is the auth store's job.
type CredentialAuthenticator struct {
	client client.Client
	log    logging.Logger
}

func NewCredentialAuthenticator(c client.Client, log logging.Logger) *CredentialAuthenticator {
	return &CredentialAuthenticator{client: c, log: log.With("component", "authenticator")}
}

// Login submits credentials. The role is a client-side routing hint carried
// onto the challenge when the server demands a second factor; it is not
// verified server-side at this step.
func (a *CredentialAuthenticator) Login(ctx context.Context, creds models.Credentials, role models.Role) (LoginOutcome, error) {
	reply, err := a.client.Login(ctx, creds)
	if err != nil {
		return nil, mapLoginError(err)
	}

	if reply.RequiresTwoFactor {
		a.log.Debug(ctx, "login requires second factor", "email", reply.Email)
		return LoginChallenged{Challenge: models.SessionChallenge{
			SessionToken: reply.SessionToken,
			Email:        reply.Email,
			Role:         role,
		}}, nil
	}

	a.log.Debug(ctx, "login completed", "email", reply.Grant.User.Email)
	return LoginCompleted{Grant: *reply.Grant}, nil
}

// Register creates a new account. Registration always completes directly;
// there is no 2FA gate on a fresh account. Input preconditions (password
// length, confirmation match) are the calling screen's concern.
func (a *CredentialAuthenticator) Register(ctx context.Context, data models.RegisterData) (*models.AuthGrant, error) {
	grant, err := a.client.Register(ctx, data)
	if err != nil {
		return nil, mapRegisterError(err)
	}
	if grant.AccessToken == "" {
		return nil, fmt.Errorf("register response missing token")
	}
	return grant, nil
}

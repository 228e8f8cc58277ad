// Package services contains the application services of the RecruitAI CLI.
// This file defines the auth store: the single owner of the current user and
// of the persisted bearer token.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/recruitai/cli/internal/client/client"
	"github.com/recruitai/cli/internal/client/models"
	"github.com/recruitai/cli/internal/client/repositories/token"
	"github.com/recruitai/cli/internal/logging"
)

// AuthStore composes the authenticator, the two-factor handler and the TOTP
// enrollment manager behind one stateful service.
//
// Contract:
//   - The current user and the persisted token are mutated here and nowhere
//     else (single-writer discipline); everyone else reads.
//   - A token is persisted only together with the user of the same grant.
//   - Overlapping operations are rejected with ErrBusy; the guard is always
//     released, also on failure.
//   - After Close, in-memory state writes become no-ops instead of
//     corrupting a torn-down session.
type AuthStore struct {
	client client.Client
	tokens token.Repository
	log    logging.Logger

	authenticator *CredentialAuthenticator
	challenges    *TwoFactorChallengeHandler
	enrollment    *TOTPEnrollmentManager

	mu     sync.Mutex
	user   *models.User
	busy   bool
	closed bool
}

// NewAuthStore wires an AuthStore over the given API client and token
// repository.
func NewAuthStore(c client.Client, tokens token.Repository, log logging.Logger) *AuthStore {
	return &AuthStore{
		client:        c,
		tokens:        tokens,
		log:           log.With("component", "authstore"),
		authenticator: NewCredentialAuthenticator(c, log),
		challenges:    NewTwoFactorChallengeHandler(c, log),
		enrollment:    NewTOTPEnrollmentManager(c, log),
	}
}

func (s *AuthStore) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	return nil
}

func (s *AuthStore) end() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// setUser replaces the current user wholesale. Dropped silently once the
// store is closed, so a response arriving after teardown cannot resurrect
// session state.
func (s *AuthStore) setUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.user = u
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (s *AuthStore) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated is derived state: a user is present.
func (s *AuthStore) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

// Loading reports whether an operation is currently in flight.
func (s *AuthStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Close tears the store down. Pending responses still complete their network
// work but no longer touch session state.
func (s *AuthStore) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Bootstrap restores a previous session: if a token is persisted, the
// profile is fetched and the user populated. Any fetch failure is the
// expected stale-token path: the token is cleared, no error surfaces, the
// client simply starts signed out.
func (s *AuthStore) Bootstrap(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	tok, err := s.tokens.Get(ctx)
	if err != nil {
		return fmt.Errorf("read persisted token: %w", err)
	}
	if tok == "" {
		return nil
	}

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		s.log.Debug(ctx, "session restore failed, clearing token", "error", err)
		if cerr := s.tokens.Clear(ctx); cerr != nil {
			s.log.Warn(ctx, "failed to clear stale token", "error", cerr)
		}
		return nil
	}

	s.setUser(user)
	s.log.Info(ctx, "session restored", "email", user.Email)
	return nil
}

// Login runs the password step. On a completed login the token and user are
// committed together; on a challenge nothing is committed and the returned
// LoginChallenged carries the handoff to Verify2FA.
func (s *AuthStore) Login(ctx context.Context, creds models.Credentials, role models.Role) (LoginOutcome, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	outcome, err := s.authenticator.Login(ctx, creds, role)
	if err != nil {
		return nil, err
	}

	if completed, ok := outcome.(LoginCompleted); ok {
		if err := s.commitGrant(ctx, completed.Grant); err != nil {
			return nil, err
		}
	}
	return outcome, nil
}

// Register creates an account and signs it in directly.
func (s *AuthStore) Register(ctx context.Context, data models.RegisterData) (*models.User, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	grant, err := s.authenticator.Register(ctx, data)
	if err != nil {
		return nil, err
	}
	if err := s.commitGrant(ctx, *grant); err != nil {
		return nil, err
	}
	u := grant.User
	return &u, nil
}

// Verify2FA completes a challenged login. The challenge is single use on
// success; on ErrInvalidCode the same challenge stays valid for a retry.
func (s *AuthStore) Verify2FA(ctx context.Context, challenge *models.SessionChallenge, code string) (*models.User, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	grant, err := s.challenges.Verify(ctx, challenge, code)
	if err != nil {
		return nil, err
	}
	if err := s.commitGrant(ctx, *grant); err != nil {
		return nil, err
	}
	u := grant.User
	return &u, nil
}

// commitGrant persists the token and publishes the user as one step, so the
// two can never diverge.
func (s *AuthStore) commitGrant(ctx context.Context, grant models.AuthGrant) error {
	if err := s.tokens.Set(ctx, grant.AccessToken); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	u := grant.User
	s.setUser(&u)
	return nil
}

// Logout clears the persisted token and the current user. It needs no
// network call and succeeds regardless of prior state; a failing local
// delete is logged, not surfaced.
func (s *AuthStore) Logout(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear persisted token on logout", "error", err)
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.log.Info(ctx, "logged out")
}

// SetupTOTP starts authenticator enrollment for the signed-in user.
func (s *AuthStore) SetupTOTP(ctx context.Context) (*models.TOTPSetup, error) {
	if !s.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	return s.enrollment.Setup(ctx)
}

// ConfirmTOTP finishes enrollment. On success the local user mirrors the
// server's new flags.
func (s *AuthStore) ConfirmTOTP(ctx context.Context, code string) error {
	if !s.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	if err := s.enrollment.Confirm(ctx, code); err != nil {
		return err
	}

	s.updateTwoFactorFlags(true)
	return nil
}

// DisableTOTP turns the second factor off for the signed-in user.
func (s *AuthStore) DisableTOTP(ctx context.Context, code string) error {
	if !s.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	if err := s.enrollment.Disable(ctx, code); err != nil {
		return err
	}

	s.updateTwoFactorFlags(false)
	return nil
}

// CancelTOTPSetup drops a pending enrollment without a server call.
func (s *AuthStore) CancelTOTPSetup() {
	s.enrollment.CancelSetup()
}

// PendingTOTPSetup exposes the unfinished enrollment material, if any.
func (s *AuthStore) PendingTOTPSetup() *models.TOTPSetup {
	return s.enrollment.PendingSetup()
}

func (s *AuthStore) updateTwoFactorFlags(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.user == nil {
		return
	}
	u := *s.user
	u.TOTPConfirmed = enabled
	u.TwoFactorEnabled = enabled
	s.user = &u
}

// UpdateUser saves profile changes server-side and replaces the local user
// with the server's version.
func (s *AuthStore) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	if !s.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	updated, err := s.client.UpdateProfile(ctx, user)
	if err != nil {
		return nil, err
	}
	s.setUser(updated)
	u := *updated
	return &u, nil
}

// Ping proxies a liveness probe to the underlying client.
func (s *AuthStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

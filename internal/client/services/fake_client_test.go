package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/recruitai/cli/internal/client/client"
	"github.com/recruitai/cli/internal/client/models"
	"github.com/recruitai/cli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelDebug)
}

// fakeClient implements client.Client for unit tests. Each operation either
// runs its hook (when set) or returns the canned field values, and records
// how it was called.
type fakeClient struct {
	loginFn    func(ctx context.Context, creds models.Credentials) (*client.LoginReply, error)
	loginReply *client.LoginReply
	loginErr   error
	loginCalls int

	registerGrant *models.AuthGrant
	registerErr   error
	registerData  models.RegisterData

	verifyGrant      *models.AuthGrant
	verifyErr        error
	verifyCalls      int
	lastSessionToken string
	lastCode         string

	currentUserFn  func(ctx context.Context) (*models.User, error)
	currentUser    *models.User
	currentUserErr error

	updateResult *models.User
	updateErr    error

	setup        *models.TOTPSetup
	setupErr     error
	setupCalls   int
	confirmErr   error
	confirmCodes []string
	disableErr   error
	disableCodes []string

	pingErr error
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Login(ctx context.Context, creds models.Credentials) (*client.LoginReply, error) {
	f.loginCalls++
	if f.loginFn != nil {
		return f.loginFn(ctx, creds)
	}
	return f.loginReply, f.loginErr
}

func (f *fakeClient) Register(_ context.Context, data models.RegisterData) (*models.AuthGrant, error) {
	f.registerData = data
	return f.registerGrant, f.registerErr
}

func (f *fakeClient) Verify2FA(_ context.Context, sessionToken, code string) (*models.AuthGrant, error) {
	f.verifyCalls++
	f.lastSessionToken, f.lastCode = sessionToken, code
	return f.verifyGrant, f.verifyErr
}

func (f *fakeClient) CurrentUser(ctx context.Context) (*models.User, error) {
	if f.currentUserFn != nil {
		return f.currentUserFn(ctx)
	}
	return f.currentUser, f.currentUserErr
}

func (f *fakeClient) UpdateProfile(_ context.Context, _ models.User) (*models.User, error) {
	return f.updateResult, f.updateErr
}

func (f *fakeClient) SetupTOTP(_ context.Context) (*models.TOTPSetup, error) {
	f.setupCalls++
	return f.setup, f.setupErr
}

func (f *fakeClient) ConfirmTOTP(_ context.Context, code string) error {
	f.confirmCodes = append(f.confirmCodes, code)
	return f.confirmErr
}

func (f *fakeClient) DisableTOTP(_ context.Context, code string) error {
	f.disableCodes = append(f.disableCodes, code)
	return f.disableErr
}

func (f *fakeClient) Ping(_ context.Context) error { return f.pingErr }

package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/recruitai/cli/internal/client/models"
	"github.com/recruitai/cli/internal/client/services"
	"github.com/recruitai/cli/internal/logging"
)

func newTestApp(f *fakeStore) *App {
	return &App{
		store:  f,
		reader: bufio.NewReader(strings.NewReader("")),
		log:    logging.NewTextLogger(io.Discard, slog.LevelDebug),
	}
}

// muteOutput silences user-facing prints and collects them for assertions.
func muteOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		var parts []string
		for _, a := range args {
			if s, ok := a.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

// stubLine feeds canned answers to getSimpleText, one per call.
func stubLine(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

// stubPasswords feeds canned answers to getPassword, one per call.
func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if i >= len(answers) {
			return nil, io.EOF
		}
		a := answers[i]
		i++
		return []byte(a), nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func stubChoice(t *testing.T, answer string) {
	t.Helper()
	orig := getChoice
	getChoice = func(_ *bufio.Reader, _ string, _ []string, _ io.Writer) (string, error) {
		return answer, nil
	}
	t.Cleanup(func() { getChoice = orig })
}

// fakeStore implements authStore for screen tests.
type fakeStore struct {
	user *models.User

	loginOutcome services.LoginOutcome
	loginErr     error
	loginCreds   models.Credentials
	loginRole    models.Role

	registerUser *models.User
	registerErr  error
	registerData models.RegisterData
	registerCall int

	verifyUser  *models.User
	verifyErrs  []error // popped per call, empty means success
	verifyCodes []string

	logoutCalled bool

	updateResult *models.User
	updateErr    error

	setup       *models.TOTPSetup
	setupErr    error
	pending     *models.TOTPSetup
	confirmErrs []error
	confirmed   []string
	disableErr  error
	disabled    []string
	cancelCall  int
}

func (f *fakeStore) Bootstrap(context.Context) error { return nil }

func (f *fakeStore) Login(_ context.Context, creds models.Credentials, role models.Role) (services.LoginOutcome, error) {
	f.loginCreds, f.loginRole = creds, role
	return f.loginOutcome, f.loginErr
}

func (f *fakeStore) Register(_ context.Context, data models.RegisterData) (*models.User, error) {
	f.registerCall++
	f.registerData = data
	if f.registerErr == nil {
		f.user = f.registerUser
	}
	return f.registerUser, f.registerErr
}

func (f *fakeStore) Verify2FA(_ context.Context, _ *models.SessionChallenge, code string) (*models.User, error) {
	f.verifyCodes = append(f.verifyCodes, code)
	if len(f.verifyErrs) > 0 {
		err := f.verifyErrs[0]
		f.verifyErrs = f.verifyErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	f.user = f.verifyUser
	return f.verifyUser, nil
}

func (f *fakeStore) Logout(context.Context) {
	f.logoutCalled = true
	f.user = nil
}

func (f *fakeStore) CurrentUser() *models.User {
	if f.user == nil {
		return nil
	}
	u := *f.user
	return &u
}

func (f *fakeStore) IsAuthenticated() bool { return f.user != nil }

func (f *fakeStore) UpdateUser(_ context.Context, _ models.User) (*models.User, error) {
	return f.updateResult, f.updateErr
}

func (f *fakeStore) SetupTOTP(context.Context) (*models.TOTPSetup, error) {
	if f.setupErr == nil {
		f.pending = f.setup
	}
	return f.setup, f.setupErr
}

func (f *fakeStore) ConfirmTOTP(_ context.Context, code string) error {
	f.confirmed = append(f.confirmed, code)
	if len(f.confirmErrs) > 0 {
		err := f.confirmErrs[0]
		f.confirmErrs = f.confirmErrs[1:]
		if err != nil {
			return err
		}
	}
	f.pending = nil
	return nil
}

func (f *fakeStore) DisableTOTP(_ context.Context, code string) error {
	f.disabled = append(f.disabled, code)
	return f.disableErr
}

func (f *fakeStore) CancelTOTPSetup() {
	f.cancelCall++
	f.pending = nil
}

func (f *fakeStore) PendingTOTPSetup() *models.TOTPSetup { return f.pending }

func (f *fakeStore) Ping(context.Context) error { return nil }

func (f *fakeStore) Close() {}

package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/recruitai/cli/internal/client/client"
	"github.com/recruitai/cli/internal/client/config"
	"github.com/recruitai/cli/internal/client/models"
	"github.com/recruitai/cli/internal/client/repositories/token"
	"github.com/recruitai/cli/internal/client/services"
	"github.com/recruitai/cli/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// authStore is the slice of services.AuthStore the screens need. Tests swap
// in a fake.
type authStore interface {
	Bootstrap(ctx context.Context) error
	Login(ctx context.Context, creds models.Credentials, role models.Role) (services.LoginOutcome, error)
	Register(ctx context.Context, data models.RegisterData) (*models.User, error)
	Verify2FA(ctx context.Context, challenge *models.SessionChallenge, code string) (*models.User, error)
	Logout(ctx context.Context)
	CurrentUser() *models.User
	IsAuthenticated() bool
	UpdateUser(ctx context.Context, user models.User) (*models.User, error)
	SetupTOTP(ctx context.Context) (*models.TOTPSetup, error)
	ConfirmTOTP(ctx context.Context, code string) error
	DisableTOTP(ctx context.Context, code string) error
	CancelTOTPSetup()
	PendingTOTPSetup() *models.TOTPSetup
	Ping(ctx context.Context) error
	Close()
}

type App struct {
	config *config.Config
	store  authStore
	db     *sql.DB
	log    logging.Logger

	// challenge is the pending two-factor handoff between the login screen
	// and the verification screen, nil outside a challenged login.
	challenge *models.SessionChallenge

	Mode   Mode
	reader *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	tokens := token.NewSQLiteRepository(db)
	apiClient := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, func(ctx context.Context) string {
		t, err := tokens.Get(ctx)
		if err != nil {
			log.Warn(ctx, "error reading persisted token", "error", err)
			return ""
		}
		return t
	}, log)

	store := services.NewAuthStore(apiClient, tokens, log)

	return &App{
		config: c,
		store:  store,
		db:     db,
		log:    log.With("component", "cli"),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		printlnFn("Switched to", string(mode), "mode")
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

// Run restores a persisted session, starts the connectivity watcher and
// hands control to the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	if err := a.store.Bootstrap(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if u := a.store.CurrentUser(); u != nil {
		printlnFn("Welcome back,", u.Name)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	printlnFn("RecruitAI CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) close() {
	a.store.Close()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) getStatus() string {
	s := ""
	if u := a.store.CurrentUser(); u != nil {
		s = u.Email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

// StartOnlineStatusWatcher probes the server on every tick and flips the
// online/offline indicator shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.store.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode != ModeOffline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}

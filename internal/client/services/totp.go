package services

import (
	"context"
	"sync"

	"github.com/recruitai/cli/internal/client/client"
	"github.com/recruitai/cli/internal/client/models"
	"github.com/recruitai/cli/internal/logging"
)

// TOTPEnrollmentManager drives enrollment of an authenticator app:
// setup (fetch secret/QR), confirm (prove the app works), disable.
//
// The pending TOTPSetup is kept across failed confirmations so the user can
// retry against the same QR code without re-requesting setup, and is
// discarded on success or cancel.
type TOTPEnrollmentManager struct {
	client client.Client
	log    logging.Logger

	mu    sync.Mutex
	setup *models.TOTPSetup
}

func NewTOTPEnrollmentManager(c client.Client, log logging.Logger) *TOTPEnrollmentManager {
	return &TOTPEnrollmentManager{client: c, log: log.With("component", "totp")}
}

// Setup requests fresh enrollment material from the server. The server
// generates a pending secret; nothing about the account's enrollment state
// changes until Confirm succeeds.
func (m *TOTPEnrollmentManager) Setup(ctx context.Context) (*models.TOTPSetup, error) {
	setup, err := m.client.SetupTOTP(ctx)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.setup = setup
	m.mu.Unlock()

	m.log.Debug(ctx, "totp setup material received")
	return setup, nil
}

// PendingSetup returns the enrollment material of an unfinished setup, or
// nil when none is pending.
func (m *TOTPEnrollmentManager) PendingSetup() *models.TOTPSetup {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setup
}

// Confirm verifies a code against the pending secret. On success the pending
// setup is discarded; on ErrInvalidCode it is kept so the user can retry.
func (m *TOTPEnrollmentManager) Confirm(ctx context.Context, code string) error {
	if err := m.client.ConfirmTOTP(ctx, code); err != nil {
		return mapCodeError(err)
	}

	m.mu.Lock()
	m.setup = nil
	m.mu.Unlock()

	m.log.Debug(ctx, "totp enrollment confirmed")
	return nil
}

// Disable turns the second factor off, gated on a current code.
func (m *TOTPEnrollmentManager) Disable(ctx context.Context, code string) error {
	if err := m.client.DisableTOTP(ctx, code); err != nil {
		return mapCodeError(err)
	}
	m.log.Debug(ctx, "totp disabled")
	return nil
}

// CancelSetup discards the pending enrollment material without any server
// call.
func (m *TOTPEnrollmentManager) CancelSetup() {
	m.mu.Lock()
	m.setup = nil
	m.mu.Unlock()
}

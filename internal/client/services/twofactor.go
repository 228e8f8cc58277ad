package services

import (
	"context"

	"github.com/recruitai/cli/internal/client/client"
	"github.com/recruitai/cli/internal/client/models"
	"github.com/recruitai/cli/internal/logging"
)

// TwoFactorChallengeHandler completes a pending login by exchanging the
// session token plus a TOTP code for a full grant.
type TwoFactorChallengeHandler struct {
	client client.Client
	log    logging.Logger
}

func NewTwoFactorChallengeHandler(c client.Client, log logging.Logger) *TwoFactorChallengeHandler {
	return &TwoFactorChallengeHandler{client: c, log: log.With("component", "twofactor")}
}

// Verify submits the code for the given challenge. A missing or zero
// challenge is refused before any network call: the caller must restart at
// login. A rejected code comes back as ErrInvalidCode; the challenge stays
// usable for another attempt until the server expires it.
func (h *TwoFactorChallengeHandler) Verify(ctx context.Context, challenge *models.SessionChallenge, code string) (*models.AuthGrant, error) {
	if challenge.Zero() {
		return nil, ErrChallengeMissing
	}

	grant, err := h.client.Verify2FA(ctx, challenge.SessionToken, code)
	if err != nil {
		return nil, mapCodeError(err)
	}

	h.log.Debug(ctx, "second factor accepted", "email", grant.User.Email)
	return grant, nil
}

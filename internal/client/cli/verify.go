package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/recruitai/cli/internal/client/otp"
	"github.com/recruitai/cli/internal/client/services"
)

// Verify runs the verification-code screen of a challenged login. The code
// is entered into six single-digit slots driven by otp.Controller: typed
// digits land on the focused slot, a longer digit string is distributed as a
// paste, and filling the last slot submits automatically. A rejected code
// clears all slots and refocuses the first one for a fresh attempt.
//
// Entering the screen without a pending challenge (or after the challenge
// was consumed) sends the user back to the login screen.
func (a *App) Verify(ctx context.Context) error {
	if a.challenge == nil || a.challenge.Zero() {
		printlnFn("No verification pending, please sign in first.")
		return nil
	}

	printlnFn("Enter the 6-digit code from your authenticator app.")
	printlnFn("(digits to fill, 'b' back, 'd' delete, 'r' retype, 'cancel' to leave)")

	var submit string
	ctrl := otp.NewController(func(code string) { submit = code })

	for {
		printlnFn(renderSlots(ctrl))

		if submit == "" {
			line, err := getSimpleText(a.reader, "code", os.Stdout)
			if err != nil {
				return err
			}

			switch line {
			case "":
				continue
			case "cancel":
				printlnFn("Verification postponed, type 'verify' to resume.")
				return nil
			case "b":
				ctrl.Backspace(ctrl.Focus())
				continue
			case "d":
				ctrl.ClearSlot(ctrl.Focus())
				continue
			case "r":
				ctrl.Reset()
				continue
			}

			ok := false
			if len(line) == 1 {
				ok = ctrl.Digit(ctrl.Focus(), rune(line[0]))
			} else {
				ok = ctrl.Paste(line)
			}
			if !ok {
				printlnFn("Only digits are accepted.")
			}
			if submit == "" {
				continue
			}
		}

		code := submit
		submit = ""

		user, err := a.store.Verify2FA(ctx, a.challenge, code)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCode) {
				printlnFn("Invalid verification code, try again.")
				ctrl.Reset()
				continue
			}
			if errors.Is(err, services.ErrChallengeMissing) {
				printlnFn("Your verification session expired, please sign in again.")
				a.challenge = nil
				return nil
			}
			a.reportAuthError(ctx, err)
			return nil
		}

		a.challenge = nil
		printlnFn("Signed in as", user.Email)
		return nil
	}
}

func renderSlots(c *otp.Controller) string {
	var b strings.Builder
	for i := 0; i < otp.CodeLength; i++ {
		s := c.Slot(i)
		if s == "" {
			s = "_"
		}
		if i == c.Focus() {
			b.WriteString("[" + s + "]")
		} else {
			b.WriteString(" " + s + " ")
		}
	}
	return b.String()
}

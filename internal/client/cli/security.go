package cli

import (
	"context"
	"encoding/base64"
	"errors"
	"os"

	"github.com/recruitai/cli/internal/client/services"
)

// TwoFactorSetup enrolls an authenticator app for the signed-in user. The
// QR code is written as a PNG to a temp file so the user can open and scan
// it; the otpauth URL and the raw secret are printed as the manual
// alternative. The screen then loops on the confirmation code: a rejected
// code keeps the same enrollment material, so the user never has to re-scan.
func (a *App) TwoFactorSetup(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please sign in first.")
		return nil
	}

	setup := a.store.PendingTOTPSetup()
	if setup == nil {
		var err error
		setup, err = a.store.SetupTOTP(ctx)
		if err != nil {
			a.reportAuthError(ctx, err)
			return nil
		}
	}

	if path, err := saveQRCode(setup.QRCodePNG); err != nil {
		a.log.Warn(ctx, "could not save QR code image", "error", err)
	} else {
		printlnFn("QR code saved to", path)
	}
	printlnFn("Or add the account manually:")
	printlnFn("  URL:    ", setup.OTPAuthURL)
	printlnFn("  Secret: ", setup.Secret)

	for {
		code, err := getSimpleText(a.reader, "Enter the code from your app ('cancel' to abort)", os.Stdout)
		if err != nil {
			return err
		}
		if code == "cancel" {
			a.store.CancelTOTPSetup()
			printlnFn("Enrollment cancelled.")
			return nil
		}

		if err := a.store.ConfirmTOTP(ctx, code); err != nil {
			if errors.Is(err, services.ErrInvalidCode) {
				printlnFn("Invalid verification code, try again.")
				continue
			}
			a.reportAuthError(ctx, err)
			return nil
		}

		printlnFn("Two-factor authentication enabled.")
		return nil
	}
}

// TwoFactorDisable turns the second factor off. The server demands a valid
// current code as proof of possession.
func (a *App) TwoFactorDisable(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please sign in first.")
		return nil
	}

	code, err := getSimpleText(a.reader, "Enter the code from your app", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.DisableTOTP(ctx, code); err != nil {
		a.reportAuthError(ctx, err)
		return nil
	}

	printlnFn("Two-factor authentication disabled.")
	return nil
}

// saveQRCode decodes a base64 PNG into a temp file and returns its path.
var saveQRCode = func(encoded string) (string, error) {
	img, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	f, err := os.CreateTemp("", "recruitai-2fa-*.png")
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := f.Write(img); err != nil {
		return "", err
	}
	return f.Name(), nil
}

package cli

import (
	"context"
	"testing"

	"github.com/recruitai/cli/internal/client/models"
	"github.com/recruitai/cli/internal/client/services"
)

var testSetup = &models.TOTPSetup{
	Secret:     "JBSWY3DPEHPK3PXP",
	QRCodePNG:  "aW1hZ2U=",
	OTPAuthURL: "otpauth://totp/RecruitAI:a@b.com?secret=JBSWY3DPEHPK3PXP",
}

func stubQRCode(t *testing.T) {
	t.Helper()
	orig := saveQRCode
	saveQRCode = func(string) (string, error) { return "/tmp/qr.png", nil }
	t.Cleanup(func() { saveQRCode = orig })
}

func TestTwoFactorSetup_NotSignedIn(t *testing.T) {
	out := muteOutput(t)

	f := &fakeStore{setup: testSetup}
	a := newTestApp(f)

	if err := a.TwoFactorSetup(context.Background()); err != nil {
		t.Fatalf("TwoFactorSetup err: %v", err)
	}
	if f.pending != nil {
		t.Fatalf("no enrollment may start while signed out")
	}
	if !containsLine(*out, "sign in first") {
		t.Fatalf("missing message, got %v", *out)
	}
}

func TestTwoFactorSetup_WrongCodeKeepsMaterial(t *testing.T) {
	out := muteOutput(t)
	stubQRCode(t)
	stubLine(t, "000000", "123456")

	f := &fakeStore{
		user:        &models.User{ID: 1, Email: "a@b.com"},
		setup:       testSetup,
		confirmErrs: []error{services.ErrInvalidCode},
	}
	a := newTestApp(f)

	if err := a.TwoFactorSetup(context.Background()); err != nil {
		t.Fatalf("TwoFactorSetup err: %v", err)
	}
	if got := f.confirmed; len(got) != 2 || got[1] != "123456" {
		t.Fatalf("confirm codes: %v", got)
	}
	if f.pending != nil {
		t.Fatalf("material must be dropped after a confirmed code")
	}
	if !containsLine(*out, "enabled") {
		t.Fatalf("missing message, got %v", *out)
	}
}

func TestTwoFactorSetup_ResumesPendingEnrollment(t *testing.T) {
	muteOutput(t)
	stubQRCode(t)
	stubLine(t, "123456")

	f := &fakeStore{
		user:    &models.User{ID: 1, Email: "a@b.com"},
		pending: testSetup,
	}
	a := newTestApp(f)

	if err := a.TwoFactorSetup(context.Background()); err != nil {
		t.Fatalf("TwoFactorSetup err: %v", err)
	}
	if got := f.confirmed; len(got) != 1 || got[0] != "123456" {
		t.Fatalf("confirm codes: %v", got)
	}
}

func TestTwoFactorSetup_Cancel(t *testing.T) {
	muteOutput(t)
	stubQRCode(t)
	stubLine(t, "cancel")

	f := &fakeStore{
		user:  &models.User{ID: 1, Email: "a@b.com"},
		setup: testSetup,
	}
	a := newTestApp(f)

	if err := a.TwoFactorSetup(context.Background()); err != nil {
		t.Fatalf("TwoFactorSetup err: %v", err)
	}
	if f.cancelCall != 1 {
		t.Fatalf("CancelTOTPSetup not called")
	}
	if len(f.confirmed) != 0 {
		t.Fatalf("no confirm request expected: %v", f.confirmed)
	}
}

func TestTwoFactorDisable(t *testing.T) {
	out := muteOutput(t)
	stubLine(t, "123456")

	f := &fakeStore{user: &models.User{ID: 1, Email: "a@b.com", TwoFactorEnabled: true, TOTPConfirmed: true}}
	a := newTestApp(f)

	if err := a.TwoFactorDisable(context.Background()); err != nil {
		t.Fatalf("TwoFactorDisable err: %v", err)
	}
	if got := f.disabled; len(got) != 1 || got[0] != "123456" {
		t.Fatalf("disable codes: %v", got)
	}
	if !containsLine(*out, "disabled") {
		t.Fatalf("missing message, got %v", *out)
	}
}

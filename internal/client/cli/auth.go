package cli

import (
	"context"
	"errors"
	"os"

	"github.com/recruitai/cli/internal/client/client"
	"github.com/recruitai/cli/internal/client/models"
	"github.com/recruitai/cli/internal/client/services"
)

// getSimpleText, getPassword and getChoice are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getChoice = GetChoice

func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func roleFromChoice(choice string) models.Role {
	if choice == "recruiter" {
		return models.RoleRecruiter
	}
	return models.RoleCandidate
}

// Login prompts for the account kind, email and password and runs the
// password step of sign-in.
//
// A completed login reports success and returns. A challenged login stores
// the session handoff on the App and moves straight to the verification
// screen. Input and transport errors are reported to the user; the method
// returns nil in those cases so the REPL keeps running.
func (a *App) Login(ctx context.Context) error {
	choice, err := getChoice(a.reader, "Sign in as", []string{"candidate", "recruiter"}, os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	outcome, err := a.store.Login(ctx, models.Credentials{Email: email, Password: string(password)}, roleFromChoice(choice))
	if err != nil {
		a.reportAuthError(ctx, err)
		return nil
	}

	switch o := outcome.(type) {
	case services.LoginCompleted:
		printlnFn("Signed in as", o.Grant.User.Email)
	case services.LoginChallenged:
		challenge := o.Challenge
		a.challenge = &challenge
		printlnFn("This account requires a verification code.")
		return a.Verify(ctx)
	}
	return nil
}

// Logout signs the user out. It never fails: the token removal is local.
func (a *App) Logout(ctx context.Context) error {
	a.store.Logout(ctx)
	a.challenge = nil
	printlnFn("Signed out.")
	return nil
}

func (a *App) reportAuthError(ctx context.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		printlnFn("Invalid email or password.")
	case errors.Is(err, services.ErrInvalidCode):
		printlnFn("Invalid verification code.")
	case errors.Is(err, client.ErrUnavailable):
		printlnFn("Server unavailable, try again later.")
		a.setMode(ModeOffline)
	case errors.As(err, &ve):
		printlnFn(ve.Error())
	default:
		a.log.Error(ctx, "request failed", "error", err)
		printlnFn("An error occurred.")
	}
}

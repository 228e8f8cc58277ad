package cli

import (
	"context"
	"os"

	"github.com/recruitai/cli/internal/client/models"
)

const minPasswordLen = 6

// Register prompts for the sign-up fields and creates an account. The
// password rules are enforced here, before anything leaves the machine: at
// least six characters, and the confirmation must match. A successful
// sign-up signs the new account in directly.
func (a *App) Register(ctx context.Context) error {
	choice, err := getChoice(a.reader, "Sign up as", []string{"candidate", "recruiter"}, os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
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

	if len(password) < minPasswordLen {
		printlnFn("Password must be at least 6 characters long.")
		return nil
	}

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(confirm)

	if string(password) != string(confirm) {
		printlnFn("Passwords do not match.")
		return nil
	}

	user, err := a.store.Register(ctx, models.RegisterData{
		Name:     name,
		Email:    email,
		Password: string(password),
		Role:     roleFromChoice(choice),
	})
	if err != nil {
		a.reportAuthError(ctx, err)
		return nil
	}

	printlnFn("Account created. Signed in as", user.Email)
	return nil
}

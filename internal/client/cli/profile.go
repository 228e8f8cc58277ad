package cli

import (
	"context"
	"fmt"
	"os"
)

// Whoami prints the signed-in user's profile.
func (a *App) Whoami(ctx context.Context) error {
	u := a.store.CurrentUser()
	if u == nil {
		printlnFn("Not signed in.")
		return nil
	}

	printlnFn("Name: ", u.Name)
	printlnFn("Email:", u.Email)
	printlnFn("Role: ", string(u.Role))
	twofa := "off"
	if u.TwoFactorEnabled && u.TOTPConfirmed {
		twofa = "on"
	}
	printlnFn("2FA:  ", twofa)
	return nil
}

// UpdateProfile edits the profile fields and saves them server-side. An
// empty answer keeps the current value.
func (a *App) UpdateProfile(ctx context.Context) error {
	u := a.store.CurrentUser()
	if u == nil {
		printlnFn("Please sign in first.")
		return nil
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Full name [%s]", u.Name), os.Stdout)
	if err != nil {
		return err
	}
	if name != "" {
		u.Name = name
	}

	updated, err := a.store.UpdateUser(ctx, *u)
	if err != nil {
		a.reportAuthError(ctx, err)
		return nil
	}

	printlnFn("Profile saved for", updated.Email)
	return nil
}

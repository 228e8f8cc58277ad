package services

import (
	"errors"

	"github.com/recruitai/cli/internal/client/client"
)

var (
	// ErrInvalidCredentials means the server rejected the email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidCode means the server rejected a 6-digit verification code
	// (2FA login, TOTP confirm or TOTP disable). The enclosing flow stays
	// alive: the caller resets the code entry and retries.
	ErrInvalidCode = errors.New("invalid verification code")

	// ErrChallengeMissing means a verification was attempted without a live
	// SessionChallenge, e.g. the verify step was reached directly. The flow
	// must restart at login.
	ErrChallengeMissing = errors.New("no active two-factor challenge")

	// ErrNotAuthenticated guards operations that require a signed-in user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrBusy rejects an operation while another one is still in flight.
	ErrBusy = errors.New("operation already in progress")

	// ErrClosed rejects operations on a closed store.
	ErrClosed = errors.New("auth store closed")
)

// ValidationError carries the server's detail message for a rejected
// registration (e.g. a duplicate email). The message is shown verbatim.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

// mapLoginError translates transport errors of the login call into the
// service taxonomy.
func mapLoginError(err error) error {
	if he := client.AsHTTPError(err); he != nil {
		switch he.Status {
		case 401, 403:
			return ErrInvalidCredentials
		case 400, 422:
			return &ValidationError{Detail: he.Detail}
		}
	}
	return err
}

// mapRegisterError translates transport errors of the register call.
func mapRegisterError(err error) error {
	if he := client.AsHTTPError(err); he != nil {
		switch he.Status {
		case 400, 409, 422:
			return &ValidationError{Detail: he.Detail}
		}
	}
	return err
}

// mapCodeError translates a rejected verification code, whatever the exact
// 4xx the server chose.
func mapCodeError(err error) error {
	if he := client.AsHTTPError(err); he != nil && he.Status >= 400 && he.Status < 500 {
		return ErrInvalidCode
	}
	return err
}

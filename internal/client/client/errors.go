package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: the server could not be
	// reached or did not answer in time.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks requests the server rejected as unauthenticated.
	ErrUnauthorized = errors.New("unauthorized")
)

// HTTPError is a non-2xx response from the server. Detail carries the
// human-readable "detail" field of the response body, or a generic message
// when the body had none.
type HTTPError struct {
	Status int
	Detail string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Detail)
}

// AsHTTPError unwraps err into an *HTTPError, or returns nil.
func AsHTTPError(err error) *HTTPError {
	var he *HTTPError
	if errors.As(err, &he) {
		return he
	}
	return nil
}

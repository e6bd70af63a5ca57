package reservationsapi

import (
	"errors"
	"fmt"
)

var (
	// ErrConnection is returned when the request could not reach the server.
	ErrConnection = errors.New("reservationsapi client: connection error")

	// ErrInvalidResponse is returned when the response body cannot be decoded.
	ErrInvalidResponse = errors.New("reservationsapi client: invalid response")
)

// APIError carries the server's error message verbatim, so the calendar can
// show it to the visitor unchanged.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("reservationsapi client: server returned %d: %s", e.Status, e.Message)
}

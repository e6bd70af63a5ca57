package resend

import "errors"

var (
	// ErrDisabled is returned when no API key is configured. Callers treat
	// this as "nothing to send", not as a failure.
	ErrDisabled = errors.New("resend client: disabled, no API key configured")

	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("resend client: internal error")

	// ErrInvalidResponse is returned when the API answers with an unexpected status.
	ErrInvalidResponse = errors.New("resend client: invalid response")
)

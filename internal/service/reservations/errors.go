package reservations

import "errors"

var (
	// ErrInvalidPhone is returned when the supplied cancellation phone is
	// empty or fails the format check.
	ErrInvalidPhone = errors.New("reservations: invalid phone number")

	// ErrCannotCancel covers both "reservation not found" and "phone does
	// not match". The two are deliberately indistinguishable so a caller
	// cannot probe which reservations exist by guessing phone numbers.
	ErrCannotCancel = errors.New("reservations: cannot cancel")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("reservations: internal error")
)

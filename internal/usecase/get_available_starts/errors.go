package get_available_starts

import "errors"

var (
	// ErrInvalidDate is returned when the date does not match YYYY-MM-DD.
	ErrInvalidDate = errors.New("get_available_starts: invalid date")

	// ErrInvalidDuration is returned when the duration is not a positive hour count.
	ErrInvalidDuration = errors.New("get_available_starts: invalid duration")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("get_available_starts: internal error")
)

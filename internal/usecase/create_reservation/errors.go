package create_reservation

import "errors"

var (
	// ErrValidation is returned for missing or malformed input. It carries a
	// user-facing message and is detected before any conflict or storage logic.
	ErrValidation = errors.New("create_reservation: validation error")

	// ErrConflict is returned when the requested interval overlaps an
	// existing reservation on the same date.
	ErrConflict = errors.New("create_reservation: time slot conflict")

	// ErrInternal is returned on storage or other unexpected failures.
	ErrInternal = errors.New("create_reservation: internal error")
)

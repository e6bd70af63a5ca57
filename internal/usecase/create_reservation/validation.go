package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/THETRIS2001/piedelpoggio/internal/domain"
	"github.com/THETRIS2001/piedelpoggio/pkg/types"
)

// validationError builds a ErrValidation-wrapped error carrying a user-facing message.
func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// ValidationMessage extracts the user-facing message from an ErrValidation-wrapped error.
func ValidationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), ErrValidation.Error()+": ")
}

// validateRequest checks presence, formats and the past-date guard.
// It runs before any conflict or storage logic.
func validateRequest(req *Request, now time.Time) error {
	required := []struct {
		name  string
		value string
	}{
		{"date", req.Date},
		{"start", req.Start},
		{"end", req.End},
		{"customerName", req.CustomerName},
		{"customerPhone", req.CustomerPhone},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return validationError(fmt.Sprintf("Missing required field: %s", f.name))
		}
	}

	if !domain.DateRegex.MatchString(req.Date) {
		return validationError("Invalid date format. Use YYYY-MM-DD")
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return validationError("Invalid date format. Use YYYY-MM-DD")
	}

	if !domain.TimeRegex.MatchString(req.Start) || !domain.TimeRegex.MatchString(req.End) {
		return validationError("Invalid time format. Use HH:mm")
	}

	start, err := types.NewTimeStringFromString(req.Start)
	if err != nil {
		return validationError("Invalid time format. Use HH:mm")
	}
	end, err := types.NewTimeStringFromString(req.End)
	if err != nil {
		return validationError("Invalid time format. Use HH:mm")
	}

	if !domain.ValidPhone(req.CustomerPhone) {
		return validationError("Invalid phone number format")
	}

	if domain.IsPastDate(req.Date, now) {
		return validationError("Cannot book a date in the past")
	}

	if start.Minutes() >= end.Minutes() || end.Minutes() > domain.WorkEndMinutes {
		return validationError("Invalid time range")
	}

	return nil
}

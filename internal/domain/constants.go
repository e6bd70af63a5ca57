package domain

import "regexp"

// Operating window constants. The field can be reserved between 07:00 and
// midnight, in whole-hour steps.
const (
	WorkStartMinutes = 7 * 60  // 07:00
	WorkEndMinutes   = 24 * 60 // 24:00, rendered as "00:00"
	StepMinutes      = 60

	MinDurationHours = 1
	MaxDurationHours = 6
)

// Format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:mm
)

// Literal format checks, applied before any conflict or storage logic.
var (
	DateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	TimeRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// EndOfDayMinutes is the minute offset used for the "00:00" end-of-day
// sentinel. A reservation ending at "00:00" ends at minute 1440 of the same
// day, never at the start of the next one.
const EndOfDayMinutes = 24 * 60

// TimeString represents a time of day in "HH:mm" format.
// The empty string is the zero value and maps to minute 0.
type TimeString string

// NewTimeString creates a TimeString from a time.Time, keeping only hours and minutes.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:mm" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// FromMinutes renders a minute offset as a TimeString.
// An offset of 1440 renders as "00:00", never "24:00".
func FromMinutes(m int) TimeString {
	if m == EndOfDayMinutes {
		return "00:00"
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

// Validate checks that the value matches "HH:mm" with a valid hour and minute.
func (t TimeString) Validate() error {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("invalid time string format: %q", s)
	}
	var hh, mm int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hh, &mm); err != nil {
		return fmt.Errorf("invalid time string format: %q", s)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return fmt.Errorf("time out of range: %q", s)
	}
	return nil
}

// Minutes returns the minute offset from the start of the day.
// "00:00" maps to 1440 (end of day) so that closing-time comparisons work
// without special-casing midnight. The empty string maps to 0.
func (t TimeString) Minutes() int {
	if t == "" {
		return 0
	}
	var hh, mm int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hh, &mm); err != nil {
		return 0
	}
	if hh == 0 && mm == 0 {
		return EndOfDayMinutes
	}
	return hh*60 + mm
}

// IsZero returns true if the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// IsBefore returns true if t is strictly before other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter returns true if t is strictly after other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// String returns the "HH:mm" representation.
func (t TimeString) String() string {
	return string(t)
}

// Value implements driver.Valuer so the type can be written to a TIME column.
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres TIME columns come back as
// "HH:mm:ss"; the seconds are dropped.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = trimSeconds(v)
		return nil
	case []byte:
		*t = trimSeconds(string(v))
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func trimSeconds(s string) TimeString {
	if n := strings.Count(s, ":"); n == 2 {
		return TimeString(s[:strings.LastIndex(s, ":")])
	}
	return TimeString(s)
}

package domain

import (
	"time"

	"github.com/THETRIS2001/piedelpoggio/pkg/types"
)

// Reservation represents a single reservation of the sports field.
// The interval [Start, End) is half-open; End == "00:00" means end of day
// (minute 1440), never the start of the next day.
type Reservation struct {
	ID    string
	Date  string // YYYY-MM-DD
	Start types.TimeString
	End   types.TimeString

	Title string

	CustomerName  string
	CustomerPhone string // sole cancellation credential, compared trimmed and unchanged otherwise
	CustomerEmail string

	CreatedAt time.Time
}

// Interval returns the reservation's [start, end) interval as minute offsets.
func (r *Reservation) Interval() (start, end int) {
	return r.Start.Minutes(), r.End.Minutes()
}

// OverlapsInterval returns true if the reservation overlaps [start, end)
// expressed in minute offsets.
func (r *Reservation) OverlapsInterval(start, end int) bool {
	rs, re := r.Interval()
	return Overlaps(start, end, rs, re)
}

// IsPastDate returns true if date (YYYY-MM-DD) is strictly before today
// relative to now. Malformed dates are treated as past so they never pass
// a guard by accident.
func IsPastDate(date string, now time.Time) bool {
	d, err := time.ParseInLocation(DateFormat, date, now.Location())
	if err != nil {
		return true
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(today)
}

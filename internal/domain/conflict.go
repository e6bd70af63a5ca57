package domain

import "github.com/THETRIS2001/piedelpoggio/pkg/types"

// HasConflict reports whether [start, end) overlaps any of the given
// reservations. The caller passes the reservations of a single date; this is
// the single source of truth for conflicts, used by the server-side create
// path and by the calendar client for UI feedback, so the two can never
// disagree.
func HasConflict(start, end types.TimeString, reservations []*Reservation) bool {
	s, e := start.Minutes(), end.Minutes()
	for _, r := range reservations {
		if r.OverlapsInterval(s, e) {
			return true
		}
	}
	return false
}

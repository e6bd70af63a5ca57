package domain

import (
	"time"

	"github.com/THETRIS2001/piedelpoggio/pkg/types"
)

// Slot is a candidate {start, end} pair of a fixed duration inside the
// operating window. Never persisted, always recomputed from constants.
type Slot struct {
	Start types.TimeString
	End   types.TimeString
}

// AllStarts enumerates every candidate start time from the opening of the
// window to its end, inclusive, in StepMinutes increments. The closing bound
// is rendered as "00:00".
func AllStarts() []types.TimeString {
	starts := make([]types.TimeString, 0, (WorkEndMinutes-WorkStartMinutes)/StepMinutes+1)
	for m := WorkStartMinutes; m <= WorkEndMinutes; m += StepMinutes {
		starts = append(starts, types.FromMinutes(m))
	}
	return starts
}

// AvailableStarts enumerates, in ascending start order, the slots of
// durationHours whole hours that fit inside the operating window on the given
// date and do not overlap any existing reservation. A date strictly before
// today yields no slots.
func AvailableStarts(date string, durationHours int, reservations []*Reservation, now time.Time) []Slot {
	if durationHours <= 0 {
		return []Slot{}
	}
	if IsPastDate(date, now) {
		return []Slot{}
	}

	result := make([]Slot, 0)
	for m := WorkStartMinutes; m < WorkEndMinutes; m += StepMinutes {
		end := m + durationHours*StepMinutes
		if end > WorkEndMinutes {
			break
		}
		start := types.FromMinutes(m)
		endTS := types.FromMinutes(end)
		if HasConflict(start, endTS, reservations) {
			continue
		}
		result = append(result, Slot{Start: start, End: endTS})
	}
	return result
}

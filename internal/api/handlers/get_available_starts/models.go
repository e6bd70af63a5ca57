package get_available_starts

import (
	getAvailableStarts "github.com/THETRIS2001/piedelpoggio/internal/usecase/get_available_starts"
)

// Slot HTTP representation of a free slot
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailableStartsResponse body of GET /api/bookings/available-starts
type AvailableStartsResponse struct {
	Date     string `json:"date"`
	Duration int    `json:"duration"`
	Starts   []Slot `json:"starts"`
}

// FromUseCaseResponse converts the usecase response into the HTTP response.
func FromUseCaseResponse(resp *getAvailableStarts.Response) *AvailableStartsResponse {
	starts := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		starts[i] = Slot{
			Start: slot.Start.String(),
			End:   slot.End.String(),
		}
	}

	return &AvailableStartsResponse{
		Date:     resp.Date,
		Duration: resp.DurationHours,
		Starts:   starts,
	}
}

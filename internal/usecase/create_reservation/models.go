package create_reservation

import (
	"time"

	"github.com/THETRIS2001/piedelpoggio/internal/domain"
	"github.com/THETRIS2001/piedelpoggio/pkg/types"
)

// Request create-reservation input, raw strings as received at the boundary
type Request struct {
	Date          string // "2025-06-01"
	Start         string // "10:00"
	End           string // "12:00", "00:00" = end of day
	Title         string // optional, defaults to "Prenotazione <name>"
	CustomerName  string
	CustomerPhone string
	CustomerEmail string // optional
}

// Response the persisted reservation
type Response struct {
	ID            string
	Date          string
	Start         types.TimeString
	End           types.TimeString
	Title         string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	CreatedAt     time.Time
}

func fromDomain(res *domain.Reservation) *Response {
	return &Response{
		ID:            res.ID,
		Date:          res.Date,
		Start:         res.Start,
		End:           res.End,
		Title:         res.Title,
		CustomerName:  res.CustomerName,
		CustomerPhone: res.CustomerPhone,
		CustomerEmail: res.CustomerEmail,
		CreatedAt:     res.CreatedAt,
	}
}

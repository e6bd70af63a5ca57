package list_reservations

import (
	"time"

	"github.com/THETRIS2001/piedelpoggio/internal/domain"
)

// Booking HTTP representation of a reservation
type Booking struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	Start         string `json:"start"`
	End           string `json:"end"`
	Title         string `json:"title,omitempty"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// BookingsResponse body of GET /api/bookings
type BookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}

// FromDomain converts a domain reservation to its HTTP representation.
func FromDomain(res *domain.Reservation) Booking {
	return Booking{
		ID:            res.ID,
		Date:          res.Date,
		Start:         res.Start.String(),
		End:           res.End.String(),
		Title:         res.Title,
		CustomerName:  res.CustomerName,
		CustomerPhone: res.CustomerPhone,
		CustomerEmail: res.CustomerEmail,
		CreatedAt:     res.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainList converts a list of domain reservations.
func FromDomainList(reservations []*domain.Reservation) BookingsResponse {
	bookings := make([]Booking, len(reservations))
	for i, res := range reservations {
		bookings[i] = FromDomain(res)
	}
	return BookingsResponse{Bookings: bookings}
}

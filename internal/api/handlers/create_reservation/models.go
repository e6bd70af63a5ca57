package create_reservation

import (
	"time"

	"github.com/THETRIS2001/piedelpoggio/internal/api/handlers/list_reservations"
	createReservation "github.com/THETRIS2001/piedelpoggio/internal/usecase/create_reservation"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date          string `json:"date"`  // "2025-06-01"
	Start         string `json:"start"` // "10:00"
	End           string `json:"end"`   // "12:00"
	Title         string `json:"title,omitempty"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking list_reservations.Booking `json:"booking"`
	Message string                    `json:"message"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model.
func (r *CreateBookingRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		Date:          r.Date,
		Start:         r.Start,
		End:           r.End,
		Title:         r.Title,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
	}
}

// FromUseCaseResponse converts the usecase response into the HTTP response.
func FromUseCaseResponse(resp *createReservation.Response, message string) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking: list_reservations.Booking{
			ID:            resp.ID,
			Date:          resp.Date,
			Start:         resp.Start.String(),
			End:           resp.End.String(),
			Title:         resp.Title,
			CustomerName:  resp.CustomerName,
			CustomerPhone: resp.CustomerPhone,
			CustomerEmail: resp.CustomerEmail,
			CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		},
		Message: message,
	}
}

package reservationsapi

// Booking reservation as exposed by the server contract
type Booking struct {
	ID            string `json:"id"`
	Date          string `json:"date"` // YYYY-MM-DD
	Start         string `json:"start"`
	End           string `json:"end"`
	Title         string `json:"title,omitempty"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// CreateBookingRequest body of POST /api/bookings
type CreateBookingRequest struct {
	Date          string `json:"date"`
	Start         string `json:"start"`
	End           string `json:"end"`
	Title         string `json:"title,omitempty"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail,omitempty"`
}

type bookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}

type createResponse struct {
	Booking Booking `json:"booking"`
	Message string  `json:"message"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

package calendar

import (
	"time"

	"github.com/THETRIS2001/piedelpoggio/internal/integrations/reservationsapi"
)

// MessageKind classifies the transient status message.
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// Message transient status line shown above the calendar
type Message struct {
	Kind MessageKind
	Text string
}

// FormData booking form input fields
type FormData struct {
	CustomerName  string
	CustomerPhone string
	Title         string
}

// FormErrors per-field inline errors of the booking form
type FormErrors struct {
	Name  string
	Phone string
}

// IsEmpty reports whether no field error is set.
func (e FormErrors) IsEmpty() bool {
	return e.Name == "" && e.Phone == ""
}

// CancelDialog state of the phone-confirmation dialog, bound to one booking
type CancelDialog struct {
	Booking reservationsapi.Booking
	Phone   string
	Error   string
}

// Day one cell of the month grid; Date is nil for padding cells
type Day struct {
	Date         *time.Time
	Key          string
	IsToday      bool
	IsPast       bool
	IsSelected   bool
	BookingCount int
}

// Slot candidate start/end pair for the chosen duration
type Slot struct {
	Start string
	End   string
}

// DayEntry display form of one booking, with the customer name masked
type DayEntry struct {
	ID    string
	Start string
	End   string
	Title string
	Name  string
}

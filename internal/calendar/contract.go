package calendar

import (
	"context"
	"time"

	"github.com/THETRIS2001/piedelpoggio/internal/integrations/reservationsapi"
)

// BookingsAPI server contract consumed by the calendar
type BookingsAPI interface {
	ListBookings(ctx context.Context, date string) ([]reservationsapi.Booking, error)
	CreateBooking(ctx context.Context, req *reservationsapi.CreateBookingRequest) (*reservationsapi.Booking, error)
	DeleteBooking(ctx context.Context, id, phone string) error
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Clock time source, injected for tests
type Clock interface {
	Now() time.Time
}

// RealClock production clock backed by time.Now
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

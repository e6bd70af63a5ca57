package get_available_starts

import (
	"context"
	"time"

	"github.com/THETRIS2001/piedelpoggio/internal/domain"
)

// ReservationRepository repository interface consumed by the usecase
type ReservationRepository interface {
	ListByDate(ctx context.Context, date string) ([]*domain.Reservation, error)
}

// TimeProvider current-time source, injectable for tests
type TimeProvider interface {
	Now() time.Time
}

// Logger logging interface consumed by the usecase
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time provider
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

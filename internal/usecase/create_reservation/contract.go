package create_reservation

import (
	"context"
	"time"

	"github.com/THETRIS2001/piedelpoggio/internal/domain"
)

// ReservationRepository repository interface consumed by the usecase
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]*domain.Reservation, error)
}

// TransactionManager runs the conflict check and the insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier fire-and-forget notification dispatch; must never block or fail the caller
type Notifier interface {
	NotifyCreated(res *domain.Reservation)
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

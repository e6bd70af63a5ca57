package reservations

import (
	"context"

	"github.com/THETRIS2001/piedelpoggio/internal/domain"
)

// ReservationRepository repository interface consumed by the service
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id string) error
}

// Notifier fire-and-forget notification dispatch
type Notifier interface {
	NotifyCancelled(res *domain.Reservation)
}

// Logger logging interface consumed by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

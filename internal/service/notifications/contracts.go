package notifications

import (
	"context"

	"github.com/THETRIS2001/piedelpoggio/internal/domain"
)

// EmailSender interface over the transactional-email client
type EmailSender interface {
	SendReservationCreated(ctx context.Context, res *domain.Reservation) error
	SendReservationCancelled(ctx context.Context, res *domain.Reservation) error
}

// Logger logging interface consumed by the dispatcher
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

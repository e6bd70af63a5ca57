package list_reservations

import (
	"context"

	"github.com/THETRIS2001/piedelpoggio/internal/domain"
)

type ReservationsService interface {
	List(ctx context.Context, date string) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_available_starts

import (
	"context"
	"fmt"
	"time"

	"github.com/THETRIS2001/piedelpoggio/internal/domain"
)

// Request availability query
type Request struct {
	Date          string // "2025-06-01"
	DurationHours int    // positive whole hours
}

// Response slots that fit the duration on the date, ascending start order
type Response struct {
	Date          string
	DurationHours int
	Slots         []domain.Slot
}

// UseCase enumerates the available start times for a chosen duration.
type UseCase struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute validates the query and computes the free slots.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if !domain.DateRegex.MatchString(req.Date) {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return nil, ErrInvalidDate
	}
	if req.DurationHours <= 0 {
		return nil, ErrInvalidDuration
	}

	reservations, err := uc.reservationRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableStarts: failed to list reservations for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	slots := domain.AvailableStarts(req.Date, req.DurationHours, reservations, uc.timeProvider.Now())

	uc.logger.Info("GetAvailableStarts: %d slots for date=%s duration=%dh", len(slots), req.Date, req.DurationHours)

	return &Response{
		Date:          req.Date,
		DurationHours: req.DurationHours,
		Slots:         slots,
	}, nil
}

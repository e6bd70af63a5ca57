package create_reservation

import (
	"context"
	"fmt"
	"strings"

	"github.com/THETRIS2001/piedelpoggio/internal/domain"
	"github.com/THETRIS2001/piedelpoggio/pkg/txmanager"
	"github.com/THETRIS2001/piedelpoggio/pkg/types"
)

// createAttempts bounds the retries of the serializable transaction.
const createAttempts = 2

// UseCase creates reservations: validation, conflict detection and the
// insert, followed by an asynchronous notification.
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute validates the request and creates the reservation. The conflict
// check and the insert run in one serializable transaction with the date's
// rows locked, so two overlapping requests can never both commit: the loser
// gets ErrConflict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, start=%s, end=%s", req.Date, req.Start, req.End)

	// 1. Validate formats, required fields, past-date guard
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	reservation := buildReservation(req)

	// 2. Conflict check + insert, atomically. On an empty date FOR UPDATE
	// locks no rows, so two concurrent first bookings both pass the conflict
	// check and Postgres aborts the loser with a serialization failure. The
	// retry re-reads the date, sees the winner's row and reports the overlap
	// as a conflict.
	var err error
	for attempt := 1; attempt <= createAttempts; attempt++ {
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			existing, err := uc.reservationRepo.ListByDate(txCtx, reservation.Date)
			if err != nil {
				uc.logger.Error("CreateReservation: failed to list reservations for date=%s: %v", reservation.Date, err)
				return fmt.Errorf("%w: failed to list reservations: %w", ErrInternal, err)
			}

			if domain.HasConflict(reservation.Start, reservation.End, existing) {
				uc.logger.Warn("CreateReservation: conflict on date=%s interval=%s-%s", reservation.Date, reservation.Start, reservation.End)
				return ErrConflict
			}

			if _, err := uc.reservationRepo.Create(txCtx, reservation); err != nil {
				uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
				return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
			}

			return nil
		})
		if err == nil || !txmanager.IsSerializationFailure(err) {
			break
		}
		uc.logger.Warn("CreateReservation: transaction aborted on date=%s (attempt %d): %v", reservation.Date, attempt, err)
	}
	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			// Aborted again: another create on this date won both rounds.
			return nil, ErrConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%s date=%s %s-%s",
		reservation.ID, reservation.Date, reservation.Start, reservation.End)

	// 3. Notify off the request path; the outcome never affects the result
	uc.notifier.NotifyCreated(reservation)

	return fromDomain(reservation), nil
}

// buildReservation maps the validated request onto a domain reservation.
// An empty title falls back to "Prenotazione <name>".
func buildReservation(req *Request) *domain.Reservation {
	name := strings.TrimSpace(req.CustomerName)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Prenotazione " + name
	}

	return &domain.Reservation{
		Date:          req.Date,
		Start:         types.TimeString(req.Start),
		End:           types.TimeString(req.End),
		Title:         title,
		CustomerName:  name,
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
	}
}

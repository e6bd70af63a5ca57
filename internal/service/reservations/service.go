package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/THETRIS2001/piedelpoggio/internal/domain"
	reservationRepo "github.com/THETRIS2001/piedelpoggio/internal/infra/storage/reservation"
)

// Service read and cancel operations on reservations
type Service struct {
	reservationRepo ReservationRepository
	notifier        Notifier
	logger          Logger
}

// NewService creates the reservations service.
func NewService(reservationRepo ReservationRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// List returns all reservations, or only those of one date when date is
// non-empty. Reads are idempotent: the same call without mutations in
// between returns the same set.
func (s *Service) List(ctx context.Context, date string) ([]*domain.Reservation, error) {
	if date != "" {
		if !domain.DateRegex.MatchString(date) {
			// A filter that can never equal a stored date matches nothing.
			s.logger.Warn("List: malformed date filter %q, returning empty set", date)
			return []*domain.Reservation{}, nil
		}
		reservations, err := s.reservationRepo.ListByDate(ctx, date)
		if err != nil {
			s.logger.Error("List: repository error for date=%s: %v", date, err)
			return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
		}
		return reservations, nil
	}

	reservations, err := s.reservationRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return reservations, nil
}

// Cancel deletes a reservation when the supplied phone number matches the
// one stored with it. The supplied number is trimmed and compared as an
// exact string, with no format normalization. A missing reservation and a
// wrong number both come back as ErrCannotCancel.
func (s *Service) Cancel(ctx context.Context, id string, suppliedPhone string) error {
	s.logger.Info("Cancel: cancelling reservation id=%s", id)

	phone := strings.TrimSpace(suppliedPhone)
	if phone == "" || !domain.ValidPhone(phone) {
		s.logger.Warn("Cancel: invalid phone format for reservation id=%s", id)
		return ErrInvalidPhone
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%s not found", id)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !domain.PhonesMatch(phone, res.CustomerPhone) {
		s.logger.Warn("Cancel: phone mismatch for reservation id=%s", id)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			// Deleted between the lookup and the delete; same outcome for the caller.
			s.logger.Warn("Cancel: reservation id=%s disappeared before delete", id)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error deleting reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: cancelled reservation id=%s date=%s %s-%s", res.ID, res.Date, res.Start, res.End)

	s.notifier.NotifyCancelled(res)

	return nil
}

package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/THETRIS2001/piedelpoggio/internal/api/handlers"
	"github.com/THETRIS2001/piedelpoggio/internal/service/reservations"
)

const (
	msgMissingID    = "Missing booking ID"
	msgInvalidPhone = "Invalid phone number format"
	msgCannotCancel = "Cannot cancel booking"
	msgDeleteFailed = "Failed to delete booking"
	msgDeleted      = "Booking deleted successfully"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// deleteResponse body of a successful DELETE
type deleteResponse struct {
	Message string `json:"message"`
}

// Handle DELETE /api/bookings
// Query params: id (required), phone (required, the cancellation credential)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		h.logger.Warn("DELETE /bookings - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	phone := r.URL.Query().Get("phone")

	err := h.service.Cancel(r.Context(), id, phone)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidPhone):
			h.logger.Warn("DELETE /bookings - Invalid phone format: booking_id=%s", id)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, reservations.ErrCannotCancel):
			// Not-found and wrong-phone share one message so callers cannot
			// probe which reservations exist.
			h.logger.Warn("DELETE /bookings - Cannot cancel: booking_id=%s", id)
			handlers.RespondForbidden(w, msgCannotCancel)

		default:
			h.logger.Error("DELETE /bookings - Failed to delete booking: booking_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w, msgDeleteFailed, err)
		}
		return
	}

	h.logger.Info("DELETE /bookings - Booking deleted: booking_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, deleteResponse{Message: msgDeleted})
}

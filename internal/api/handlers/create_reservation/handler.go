package create_reservation

import (
	"errors"
	"net/http"

	"github.com/THETRIS2001/piedelpoggio/internal/api/handlers"
	createReservation "github.com/THETRIS2001/piedelpoggio/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgConflict           = "Time slot conflict. This time is already booked."
	msgCreateFailed       = "Failed to create booking"
	msgCreated            = "Booking created successfully"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrValidation):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, createReservation.ValidationMessage(err))

		case errors.Is(err, createReservation.ErrConflict):
			h.logger.Warn("POST /bookings - Time slot conflict: date=%s %s-%s", req.Date, req.Start, req.End)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w, msgCreateFailed, err)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%s date=%s %s-%s",
		result.ID, result.Date, result.Start, result.End)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, msgCreated))
}

package get_available_starts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/THETRIS2001/piedelpoggio/internal/api/handlers"
	getAvailableStarts "github.com/THETRIS2001/piedelpoggio/internal/usecase/get_available_starts"
)

const (
	msgMissingDate     = "Missing date"
	msgInvalidDate     = "Invalid date format. Use YYYY-MM-DD"
	msgInvalidDuration = "Invalid duration, expected a positive number of hours"
	msgFetchFailed     = "Failed to fetch available starts"
)

type Handler struct {
	useCase GetAvailableStartsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableStartsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/bookings/available-starts
// Query params: date (required, YYYY-MM-DD), duration (required, hours)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /bookings/available-starts - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	duration, err := strconv.Atoi(r.URL.Query().Get("duration"))
	if err != nil {
		h.logger.Warn("GET /bookings/available-starts - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableStarts.Request{
		Date:          date,
		DurationHours: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableStarts.ErrInvalidDate):
			h.logger.Warn("GET /bookings/available-starts - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableStarts.ErrInvalidDuration):
			h.logger.Warn("GET /bookings/available-starts - Invalid duration: %d", duration)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /bookings/available-starts - Failed: date=%s, duration=%d, error=%v", date, duration, err)
			handlers.RespondInternalError(w, msgFetchFailed, err)
		}
		return
	}

	h.logger.Info("GET /bookings/available-starts - %d starts for date=%s duration=%dh",
		len(result.Slots), date, duration)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package list_reservations

import (
	"net/http"

	"github.com/THETRIS2001/piedelpoggio/internal/api/handlers"
)

const msgFetchFailed = "Failed to fetch bookings"

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

// Handle GET /api/bookings
// Query params: date (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.service.List(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to fetch bookings: %v", err)
		handlers.RespondInternalError(w, msgFetchFailed, err)
		return
	}

	h.logger.Info("GET /bookings - Fetched %d bookings (date=%q)", len(result), date)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(result))
}

package get_planning

import (
	"errors"
	"net/http"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/planning
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /admin/planning - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	list, err := h.service.PlanningForDay(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDate):
			h.logger.Warn("GET /admin/planning - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /admin/planning - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/planning - Retrieved: date=%s, bookings=%d", date, len(list))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(date, list))
}

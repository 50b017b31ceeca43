package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/google/uuid"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/service/bookings"
)

const (
	msgInvalidID       = "некорректный ID бронирования"
	msgBookingNotFound = "бронирование не найдено"
	msgCannotCancel    = "бронирование нельзя отменить в текущем статусе"
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

// Handle DELETE /api/v1/admin/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		h.logger.Warn("DELETE /admin/bookings/{id} - Invalid ID: %s", id)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Cancel(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /admin/bookings/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("DELETE /admin/bookings/{id} - Cannot cancel: id=%s", id)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("DELETE /admin/bookings/{id} - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/bookings/{id} - Cancelled: id=%s", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

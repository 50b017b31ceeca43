package get_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/service/bookings"
)

const (
	msgMissingReference = "ссылка на бронирование обязательна"
	msgBookingNotFound  = "бронирование не найдено"
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

// Handle GET /api/v1/bookings/{reference}
// Принимает как UUID бронирования, так и публичную ссылку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["reference"]
	if ref == "" {
		h.logger.Warn("GET /bookings/{reference} - Missing reference")
		handlers.RespondBadRequest(w, msgMissingReference)
		return
	}

	booking, err := h.lookup(r, ref)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{reference} - Not found: ref=%s", ref)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{reference} - Failed: ref=%s, error=%v", ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{reference} - Retrieved: ref=%s", ref)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}

func (h *Handler) lookup(r *http.Request, ref string) (*domain.Booking, error) {
	if _, err := uuid.Parse(ref); err == nil {
		return h.service.GetByID(r.Context(), ref)
	}
	return h.service.GetByPublicReference(r.Context(), ref)
}

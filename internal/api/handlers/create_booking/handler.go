package create_booking

import (
	"errors"
	"net/http"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers"
	createBooking "github.com/kalicatt/boat-booking-saas-sub003/internal/usecase/create_booking"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgSlotNotAvailable = "выбранный слот недоступен"
	msgTooLate          = "до отправления осталось слишком мало времени"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req createBooking.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			// Сюда же попадает проигрыш гонки за последние места
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrTooLate):
			h.logger.Warn("POST /bookings - Too close to departure: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgTooLate)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Created: id=%s, ref=%s", result.ID, result.PublicReference)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

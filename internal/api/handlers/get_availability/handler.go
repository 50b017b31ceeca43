package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers"
	getAvailability "github.com/kalicatt/boat-booking-saas-sub003/internal/usecase/get_availability"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingLanguage  = "язык обязателен"
	msgInvalidLanguage  = "неподдерживаемый язык экскурсии"
	msgInvalidCounts    = "некорректный состав группы"
	msgInvalidCountsFmt = "количество участников должно быть целым числом"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), lang (required),
// adults, children, babies (неотрицательные целые, по умолчанию 0)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	lang := query.Get("lang")
	if lang == "" {
		h.logger.Warn("GET /availability - Missing language")
		handlers.RespondBadRequest(w, msgMissingLanguage)
		return
	}

	adults, err := parseCount(query.Get("adults"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid adults: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCountsFmt)
		return
	}
	children, err := parseCount(query.Get("children"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid children: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCountsFmt)
		return
	}
	babies, err := parseCount(query.Get("babies"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid babies: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCountsFmt)
		return
	}

	useCaseReq := &getAvailability.Request{
		Date:     dateStr,
		Language: lang,
		Adults:   adults,
		Children: children,
		Babies:   babies,
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /availability - Invalid date: %s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrInvalidLanguage):
			h.logger.Warn("GET /availability - Invalid language: %s", lang)
			handlers.RespondBadRequest(w, msgInvalidLanguage)

		case errors.Is(err, getAvailability.ErrInvalidPartySize):
			h.logger.Warn("GET /availability - Invalid party size: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCounts)

		default:
			h.logger.Error("GET /availability - Failed to compute availability: date=%s, lang=%s, error=%v",
				dateStr, lang, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Computed: date=%s, lang=%s, slots=%d",
		dateStr, lang, len(result.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseCount(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

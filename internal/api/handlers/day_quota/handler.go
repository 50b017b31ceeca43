package day_quota

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/service/fleet"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidBody   = "некорректное тело запроса"
	msgInvalidQuota  = "недопустимое значение квоты"
	msgQuotaNotFound = "квота на этот день не задана"
)

type Handler struct {
	service FleetService
	logger  Logger
}

func NewHandler(service FleetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/admin/quotas/{date}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	day, err := domain.ParseDate(date)
	if err != nil {
		h.logger.Warn("GET /admin/quotas/{date} - Invalid date: %s", date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	q, err := h.service.GetQuota(r.Context(), day)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrQuotaNotFound):
			h.logger.Warn("GET /admin/quotas/{date} - Not found: date=%s", date)
			handlers.RespondNotFound(w, msgQuotaNotFound)

		default:
			h.logger.Error("GET /admin/quotas/{date} - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(q))
}

// HandleSet PUT /api/v1/admin/quotas/{date}
func (h *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	day, err := domain.ParseDate(date)
	if err != nil {
		h.logger.Warn("PUT /admin/quotas/{date} - Invalid date: %s", date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req SetQuotaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/quotas/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	saved, err := h.service.SetQuota(r.Context(), &domain.DailyBoatQuota{
		Day:            day,
		BoatsAvailable: req.BoatsAvailable,
		Note:           req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrInvalidQuota):
			h.logger.Warn("PUT /admin/quotas/{date} - Invalid quota: date=%s, boats=%d", date, req.BoatsAvailable)
			handlers.RespondBadRequest(w, msgInvalidQuota)

		default:
			h.logger.Error("PUT /admin/quotas/{date} - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/quotas/{date} - Set: date=%s, boats=%d", date, saved.BoatsAvailable)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(saved))
}

// HandleDelete DELETE /api/v1/admin/quotas/{date}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	day, err := domain.ParseDate(date)
	if err != nil {
		h.logger.Warn("DELETE /admin/quotas/{date} - Invalid date: %s", date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.RemoveQuota(r.Context(), day); err != nil {
		switch {
		case errors.Is(err, fleet.ErrQuotaNotFound):
			h.logger.Warn("DELETE /admin/quotas/{date} - Not found: date=%s", date)
			handlers.RespondNotFound(w, msgQuotaNotFound)

		default:
			h.logger.Error("DELETE /admin/quotas/{date} - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/quotas/{date} - Removed: date=%s", date)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

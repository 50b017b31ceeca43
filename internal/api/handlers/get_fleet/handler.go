package get_fleet

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
)

const (
	msgInvalidBoatID = "некорректный ID лодки"
	msgInvalidBody   = "некорректное тело запроса"
	msgInvalidStatus = "статус должен быть ACTIVE или MAINTENANCE"
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

// HandleList GET /api/v1/admin/fleet
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	boats, err := h.service.ListFleet(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/fleet - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/fleet - Retrieved %d boats", len(boats))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(boats))
}

// HandleUpdateStatus PUT /api/v1/admin/fleet/{id}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/fleet/{id}/status - Invalid boat ID: %s", idStr)
		handlers.RespondBadRequest(w, msgInvalidBoatID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/fleet/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	status := domain.BoatStatus(req.Status)
	if status != domain.BoatStatusActive && status != domain.BoatStatusMaintenance {
		h.logger.Warn("PUT /admin/fleet/{id}/status - Invalid status: %s", req.Status)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	if err := h.service.SetBoatStatus(r.Context(), id, status); err != nil {
		h.logger.Error("PUT /admin/fleet/{id}/status - Failed: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/fleet/{id}/status - Updated: id=%d, status=%s", id, status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

package blocks

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/service/schedule"
)

const (
	msgInvalidBody    = "некорректное тело запроса"
	msgInvalidBlock   = "некорректные параметры блокировки"
	msgInvalidID      = "некорректный ID блокировки"
	msgBlockNotFound  = "блокировка не найдена"
	msgInvalidDateFmt = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimeFmt = "start и end должны быть в формате RFC3339"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/blocks
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	from := domain.NormalizeDay(time.Now().UTC())
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := domain.ParseDate(fromStr)
		if err != nil {
			h.logger.Warn("GET /admin/blocks - Invalid from date: %s", fromStr)
			handlers.RespondBadRequest(w, msgInvalidDateFmt)
			return
		}
		from = parsed
	}

	list, err := h.service.ListBlocks(r.Context(), from)
	if err != nil {
		h.logger.Error("GET /admin/blocks - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/blocks - Retrieved %d blocks", len(list))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}

// HandleCreate POST /api/v1/admin/blocks
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	block, err := h.toDomain(&req)
	if err != nil {
		h.logger.Warn("POST /admin/blocks - Invalid block: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	created, err := h.service.CreateBlock(r.Context(), block)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidBlock):
			h.logger.Warn("POST /admin/blocks - Invalid block: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBlock)

		default:
			h.logger.Error("POST /admin/blocks - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocks - Created block id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// HandleDelete DELETE /api/v1/admin/blocks/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/blocks/{id} - Invalid ID: %s", idStr)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteBlock(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockNotFound):
			h.logger.Warn("DELETE /admin/blocks/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgBlockNotFound)

		default:
			h.logger.Error("DELETE /admin/blocks/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocks/{id} - Deleted: id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) toDomain(req *CreateBlockRequest) (*domain.BlockedInterval, error) {
	switch domain.BlockScope(req.Scope) {
	case domain.ScopeDay:
		day, err := domain.ParseDate(req.Date)
		if err != nil {
			return nil, errors.New(msgInvalidDateFmt)
		}
		start, end := domain.DayWindowUTC(day)
		return &domain.BlockedInterval{
			Start:  start,
			End:    end,
			Scope:  domain.ScopeDay,
			Reason: req.Reason,
		}, nil

	case domain.ScopeInterval:
		start, err := time.Parse(time.RFC3339, req.Start)
		if err != nil {
			return nil, errors.New(msgInvalidTimeFmt)
		}
		end, err := time.Parse(time.RFC3339, req.End)
		if err != nil {
			return nil, errors.New(msgInvalidTimeFmt)
		}
		return &domain.BlockedInterval{
			Start:  start.UTC(),
			End:    end.UTC(),
			Scope:  domain.ScopeInterval,
			Reason: req.Reason,
		}, nil

	default:
		return nil, errors.New(msgInvalidBlock)
	}
}

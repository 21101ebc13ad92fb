package update_schedule

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/tcsoares1914/test-gbi-backend/internal/api/handlers"
	"github.com/tcsoares1914/test-gbi-backend/internal/service/schedules"
)

const (
	msgInvalidScheduleID  = "ID de agendamento inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidSlotStart   = "formato de data/hora inválido, esperado RFC 3339"
	msgInvalidServiceType = "tipo de lavagem inválido, esperado SIMPLE ou COMPLETE"
	msgNotFound           = "agendamento não encontrado"
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

// Handle PUT /api/v1/schedules/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scheduleID := vars["scheduleId"]

	if _, err := uuid.Parse(scheduleID); err != nil {
		h.logger.Warn("PUT /schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /schedules/{id} - Failed to parse slot start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotStart)
		return
	}

	schedule, err := h.service.Update(r.Context(), scheduleID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			h.logger.Warn("PUT /schedules/{id} - Schedule not found: id=%s", scheduleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("PUT /schedules/{id} - Invalid input: id=%s, error=%v", scheduleID, err)
			handlers.RespondBadRequest(w, msgInvalidServiceType)

		default:
			h.logger.Error("PUT /schedules/{id} - Failed to update schedule: id=%s, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedules/{id} - Schedule updated: id=%s", scheduleID)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}

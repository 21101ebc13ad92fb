package delete_schedule

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/tcsoares1914/test-gbi-backend/internal/api/handlers"
	"github.com/tcsoares1914/test-gbi-backend/internal/service/schedules"
)

const (
	msgInvalidScheduleID = "ID de agendamento inválido"
	msgNotFound          = "agendamento não encontrado"
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

// Handle DELETE /api/v1/schedules/{scheduleId}
// Responds with the removed schedule, matching the other endpoints.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scheduleID := vars["scheduleId"]

	if _, err := uuid.Parse(scheduleID); err != nil {
		h.logger.Warn("DELETE /schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	schedule, err := h.service.Delete(r.Context(), scheduleID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			h.logger.Warn("DELETE /schedules/{id} - Schedule not found: id=%s", scheduleID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /schedules/{id} - Failed to delete schedule: id=%s, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedules/{id} - Schedule deleted: id=%s", scheduleID)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}

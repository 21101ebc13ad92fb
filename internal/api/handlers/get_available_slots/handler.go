package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/tcsoares1914/test-gbi-backend/internal/api/handlers"
	getAvailableSlots "github.com/tcsoares1914/test-gbi-backend/internal/usecase/get_available_slots"
)

const (
	msgMissingDate        = "data obrigatória"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingServiceType = "tipo de lavagem obrigatório"
	msgInvalidServiceType = "tipo de lavagem inválido, esperado SIMPLE ou COMPLETE"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/available-slots
// Query params: date (required, YYYY-MM-DD), type (required, SIMPLE|COMPLETE)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedules/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	serviceType := r.URL.Query().Get("type")
	if serviceType == "" {
		h.logger.Warn("GET /schedules/available-slots - Missing service type")
		handlers.RespondBadRequest(w, msgMissingServiceType)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, serviceType)
	if err != nil {
		h.logger.Warn("GET /schedules/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidServiceType):
			h.logger.Warn("GET /schedules/available-slots - Invalid service type: type=%s", serviceType)
			handlers.RespondBadRequest(w, msgInvalidServiceType)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /schedules/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedules/available-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules/available-slots - %d slots returned for date=%s, type=%s",
		len(result.Slots), dateStr, serviceType)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

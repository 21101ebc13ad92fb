package create_schedule

import (
	"errors"
	"net/http"

	"github.com/tcsoares1914/test-gbi-backend/internal/api/handlers"
	createSchedule "github.com/tcsoares1914/test-gbi-backend/internal/usecase/create_schedule"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidSlotStart    = "formato de data/hora inválido, esperado RFC 3339"
	msgInvalidServiceType  = "tipo de lavagem inválido, esperado SIMPLE ou COMPLETE"
	msgInvalidPlate        = "A placa não está no padrão Mercosul!"
	msgOutsideServiceDay   = "não há atendimento aos sábados e domingos"
	msgOutsideServiceHours = "o horário informado está fora do horário de atendimento"
	msgSlotConflict        = "Ja existe uma lavagem agendada ou em andamento neste horário!"
)

type Handler struct {
	useCase CreateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase CreateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /schedules - Failed to parse slot start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSchedule.ErrInvalidServiceType):
			h.logger.Warn("POST /schedules - Invalid service type: type=%s", req.ServiceType)
			handlers.RespondUnprocessable(w, msgInvalidServiceType)

		case errors.Is(err, createSchedule.ErrInvalidPlateFormat):
			h.logger.Warn("POST /schedules - Invalid plate format: plate=%s", req.VehiclePlate)
			handlers.RespondUnprocessable(w, msgInvalidPlate)

		case errors.Is(err, createSchedule.ErrOutsideServiceDay):
			h.logger.Warn("POST /schedules - Outside service days: slot=%s", req.SlotStart)
			handlers.RespondUnprocessable(w, msgOutsideServiceDay)

		case errors.Is(err, createSchedule.ErrOutsideServiceHours):
			h.logger.Warn("POST /schedules - Outside service hours: slot=%s", req.SlotStart)
			handlers.RespondUnprocessable(w, msgOutsideServiceHours)

		case errors.Is(err, createSchedule.ErrSlotConflict):
			h.logger.Warn("POST /schedules - Slot conflict: slot=%s", req.SlotStart)
			handlers.RespondUnprocessable(w, msgSlotConflict)

		case errors.Is(err, createSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /schedules - Failed to create schedule: plate=%s, error=%v",
				req.VehiclePlate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Schedule created: id=%s, plate=%s, slot=%s",
		result.ID, result.VehiclePlate, req.SlotStart)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

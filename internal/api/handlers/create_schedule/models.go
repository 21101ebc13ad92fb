package create_schedule

import (
	"time"

	createSchedule "github.com/tcsoares1914/test-gbi-backend/internal/usecase/create_schedule"
)

// CreateScheduleRequest HTTP request model
type CreateScheduleRequest struct {
	ServiceType  string `json:"serviceType"`            // "SIMPLE" | "COMPLETE"
	VehiclePlate string `json:"vehiclePlate"`           // "ABC1234"
	SlotStart    string `json:"slotStart"`              // RFC 3339, e.g. "2026-09-01T10:00:00-03:00"
	Confirmation bool   `json:"confirmation,omitempty"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ID           string `json:"id"`
	ServiceType  string `json:"serviceType"`
	VehiclePlate string `json:"vehiclePlate"`
	SlotStart    string `json:"slotStart"`
	WindowEnd    string `json:"windowEnd"`
	Confirmation bool   `json:"confirmation"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the slot start instant. The client's UTC offset is preserved:
// business-hour rules are evaluated against the wall clock as sent.
func (r *CreateScheduleRequest) ToUseCaseRequest() (*createSchedule.Request, error) {
	slotStart, err := time.Parse(time.RFC3339, r.SlotStart)
	if err != nil {
		return nil, err
	}

	return &createSchedule.Request{
		ServiceType:  r.ServiceType,
		VehiclePlate: r.VehiclePlate,
		SlotStart:    slotStart,
		Confirmation: r.Confirmation,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createSchedule.Response) *ScheduleResponse {
	return &ScheduleResponse{
		ID:           resp.ID,
		ServiceType:  string(resp.WashType),
		VehiclePlate: resp.VehiclePlate,
		SlotStart:    resp.SlotStart.Format(time.RFC3339),
		WindowEnd:    resp.WindowEnd.Format(time.RFC3339),
		Confirmation: resp.Confirmation,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}

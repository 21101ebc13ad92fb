package update_schedule

import (
	"time"

	"github.com/tcsoares1914/test-gbi-backend/internal/service/schedules/models"
)

// UpdateScheduleRequest HTTP request model. All fields optional.
type UpdateScheduleRequest struct {
	ServiceType  *string `json:"serviceType,omitempty"`
	VehiclePlate *string `json:"vehiclePlate,omitempty"`
	SlotStart    *string `json:"slotStart,omitempty"` // RFC 3339
	Confirmation *bool   `json:"confirmation,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service model,
// parsing the slot start when present.
func (r *UpdateScheduleRequest) ToServiceRequest() (*models.UpdateScheduleRequest, error) {
	req := &models.UpdateScheduleRequest{
		ServiceType:  r.ServiceType,
		VehiclePlate: r.VehiclePlate,
		Confirmation: r.Confirmation,
	}

	if r.SlotStart != nil {
		slotStart, err := time.Parse(time.RFC3339, *r.SlotStart)
		if err != nil {
			return nil, err
		}
		req.SlotStart = &slotStart
	}

	return req, nil
}

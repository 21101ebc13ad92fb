package get_available_slots

import (
	"time"

	"github.com/tcsoares1914/test-gbi-backend/internal/domain"
	getAvailableSlots "github.com/tcsoares1914/test-gbi-backend/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	ServiceType     string   `json:"serviceType"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

// ToUseCaseRequest builds the use case request from the query params.
func ToUseCaseRequest(dateStr, serviceType string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date:        date,
		ServiceType: serviceType,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.StartTime)
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceType:     resp.WashType,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

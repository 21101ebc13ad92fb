package create_schedule

import (
	"time"

	"github.com/tcsoares1914/test-gbi-backend/internal/domain"
)

// Request carries an admission request. ServiceType stays a raw string
// so the engine itself rejects unknown tags before touching storage.
type Request struct {
	ServiceType  string    // "SIMPLE" or "COMPLETE"
	VehiclePlate string    // Mercosul plate, e.g. "ABC1234"
	SlotStart    time.Time // requested start instant, offset as sent by the client
	Confirmation bool
}

// Response is the committed schedule.
type Response struct {
	ID           string
	WashType     domain.WashType
	VehiclePlate string
	SlotStart    time.Time // normalized to UTC
	WindowEnd    time.Time
	Confirmation bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package create_schedule

import (
	"fmt"

	"github.com/tcsoares1914/test-gbi-backend/internal/domain"
)

// validateRequest checks basic well-formedness before the business rules
// run. Empty serviceType and vehiclePlate deliberately pass through:
// ParseWashType and ValidPlate reject them, so they surface as the
// admission rejections rather than as malformed input.
func validateRequest(req *Request) error {
	if req.SlotStart.IsZero() {
		return fmt.Errorf("%w: slotStart is required", ErrInvalidInput)
	}

	return nil
}

// conflictsWith reports whether any existing schedule's start falls
// inside the candidate window. FindBetween already restricted the rows
// to [window.Start, window.End]; any row back means a conflict.
//
// This is deliberately the start-containment test, not a symmetric
// interval-overlap test: an existing wash that starts before the window
// and runs into it is not detected. Kept for behavioral parity with the
// admission rule this service has always enforced.
func conflictsWith(existing []*domain.Schedule) bool {
	return len(existing) > 0
}

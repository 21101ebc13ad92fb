package get_available_slots

import (
	"context"
	"fmt"

	"github.com/tcsoares1914/test-gbi-backend/internal/domain"
)

// UseCase lists the start times still admissible on a given day for a
// given wash type. It applies the same containment rule as admission,
// so a listed slot is exactly one that Execute on create_schedule would
// accept at that moment.
type UseCase struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(scheduleRepo ScheduleRepository, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Execute returns the free slots of the requested day. Weekends yield
// an empty list rather than an error, mirroring a fully booked day.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, type=%s",
		req.Date.Format(domain.DateFormat), req.ServiceType)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	washType, err := domain.ParseWashType(req.ServiceType)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: unknown service type %q", req.ServiceType)
		return nil, fmt.Errorf("%w: %q", ErrInvalidServiceType, req.ServiceType)
	}

	candidates := generateCandidateStarts(req.Date)
	if len(candidates) == 0 {
		uc.logger.Info("GetAvailableSlots: no service on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:            req.Date,
			WashType:        string(washType),
			DurationMinutes: washType.SlotUnits() * domain.SlotUnitMinutes,
			Slots:           []Slot{},
		}, nil
	}

	// One range query covers the whole day including the last window.
	dayStart := candidates[0]
	dayEnd := candidates[len(candidates)-1].Add(washType.Duration())

	existing, err := uc.scheduleRepo.FindBetween(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to fetch schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch schedules: %v", ErrInternal, err)
	}

	slots := filterFreeStarts(candidates, washType.Duration(), existing)

	uc.logger.Info("GetAvailableSlots: %d of %d slots free on %s",
		len(slots), len(candidates), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		WashType:        string(washType),
		DurationMinutes: washType.SlotUnits() * domain.SlotUnitMinutes,
		Slots:           slots,
	}, nil
}

package create_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/tcsoares1914/test-gbi-backend/internal/domain"
)

// UseCase is the slot admission engine. Given a requested start instant
// and a wash type it decides whether a new schedule can be committed,
// and which window it occupies.
type UseCase struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase creates the admission engine.
func NewUseCase(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute admits or rejects a schedule request. Checks short-circuit in
// order: service type, plate format, weekday, hour, slot conflict. The
// conflict probe and the insert run inside one serializable transaction
// so concurrent requests for overlapping windows cannot both commit.
// A rejected admission performs no write.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSchedule: plate=%s, type=%s, slot=%s",
		req.VehiclePlate, req.ServiceType, req.SlotStart.Format("2006-01-02 15:04"))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSchedule: validation failed: %v", err)
		return nil, err
	}

	washType, err := domain.ParseWashType(req.ServiceType)
	if err != nil {
		uc.logger.Warn("CreateSchedule: unknown service type %q", req.ServiceType)
		return nil, fmt.Errorf("%w: %q", ErrInvalidServiceType, req.ServiceType)
	}

	if !domain.ValidPlate(req.VehiclePlate) {
		uc.logger.Warn("CreateSchedule: plate %q is not in the Mercosul format", req.VehiclePlate)
		return nil, ErrInvalidPlateFormat
	}

	if !domain.IsServiceDay(req.SlotStart) {
		uc.logger.Warn("CreateSchedule: slot %s falls on a weekend", req.SlotStart.Format(domain.DateFormat))
		return nil, ErrOutsideServiceDay
	}

	if !domain.IsServiceHour(req.SlotStart) {
		uc.logger.Warn("CreateSchedule: slot hour %d is outside service hours", req.SlotStart.Hour())
		return nil, ErrOutsideServiceHours
	}

	window := domain.NewWindow(req.SlotStart, washType.Duration())

	var result *domain.Schedule

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.scheduleRepo.FindBetween(txCtx, window.Start, window.End)
		if err != nil {
			uc.logger.Error("CreateSchedule: failed to probe window: %v", err)
			// %w keeps the driver error visible to the transaction
			// manager's serialization-failure retry.
			return fmt.Errorf("%w: failed to probe window: %w", ErrInternal, err)
		}

		if conflictsWith(existing) {
			uc.logger.Warn("CreateSchedule: window [%s, %s] already taken",
				window.Start.Format(domain.TimeFormat), window.End.Format(domain.TimeFormat))
			return ErrSlotConflict
		}

		schedule := &domain.Schedule{
			WashType:     washType,
			VehiclePlate: req.VehiclePlate,
			SlotStart:    req.SlotStart.UTC(),
			Confirmation: req.Confirmation,
		}

		created, err := uc.scheduleRepo.Create(txCtx, schedule)
		if err != nil {
			uc.logger.Error("CreateSchedule: failed to create schedule: %v", err)
			return fmt.Errorf("%w: failed to create schedule: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrSlotConflict) && !errors.Is(err, ErrInternal) {
			// Transaction machinery failure (begin/commit/retries).
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateSchedule: schedule id=%s committed for window [%s, %s]",
		result.ID, window.Start.Format(domain.TimeFormat), window.End.Format(domain.TimeFormat))

	return &Response{
		ID:           result.ID,
		WashType:     result.WashType,
		VehiclePlate: result.VehiclePlate,
		SlotStart:    result.SlotStart,
		WindowEnd:    result.SlotStart.Add(washType.Duration()),
		Confirmation: result.Confirmation,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

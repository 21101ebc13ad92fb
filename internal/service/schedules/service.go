package schedules

import (
	"context"
	"errors"
	"fmt"

	scheduleRepo "github.com/tcsoares1914/test-gbi-backend/internal/infra/storage/schedule"
	"github.com/tcsoares1914/test-gbi-backend/internal/service/schedules/models"
)

// Service exposes the read/update/delete operations over schedules.
// Admission (create) lives in its own use case; everything here is a
// direct repository pass-through.
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService creates the schedules service.
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetByID fetches one schedule.
func (s *Service) GetByID(ctx context.Context, id string) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByID: fetching schedule id=%s", id)

	schedule, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByID: schedule id=%s not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByID: repository error for schedule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule), nil
}

// List fetches every schedule.
func (s *Service) List(ctx context.Context) (*models.ScheduleListResponse, error) {
	s.logger.Info("List: fetching all schedules")

	schedules, err := s.scheduleRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d schedules", len(schedules))
	return models.FromDomainScheduleList(schedules), nil
}

// Update applies a partial update and returns the updated schedule.
// No admission re-validation happens here; only the wash type enum is
// checked during conversion.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule id=%s", id)

	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid update for schedule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: invalid service type", ErrInvalidInput)
	}

	schedule, err := s.scheduleRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Update: schedule id=%s not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("Update: repository error for schedule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: schedule id=%s updated", id)
	return models.FromDomainSchedule(schedule), nil
}

// Delete removes a schedule and returns the removed record.
func (s *Service) Delete(ctx context.Context, id string) (*models.ScheduleResponse, error) {
	s.logger.Info("Delete: deleting schedule id=%s", id)

	schedule, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: schedule id=%s not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for schedule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: schedule id=%s disappeared during delete", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for schedule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: schedule id=%s deleted", id)
	return models.FromDomainSchedule(schedule), nil
}

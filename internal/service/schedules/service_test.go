package schedules

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcsoares1914/test-gbi-backend/internal/domain"
	scheduleRepo "github.com/tcsoares1914/test-gbi-backend/internal/infra/storage/schedule"
	"github.com/tcsoares1914/test-gbi-backend/internal/service/schedules/models"
	"github.com/tcsoares1914/test-gbi-backend/pkg/ptr"
)

type stubScheduleRepo struct {
	schedule *domain.Schedule
	list     []*domain.Schedule

	findErr   error
	updateErr error
	deleteErr error

	deletedID  string
	lastUpdate *domain.ScheduleUpdate
}

func (s *stubScheduleRepo) FindByID(ctx context.Context, id string) (*domain.Schedule, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.schedule, nil
}

func (s *stubScheduleRepo) FindAll(ctx context.Context) ([]*domain.Schedule, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.list, nil
}

func (s *stubScheduleRepo) Update(ctx context.Context, id string, update *domain.ScheduleUpdate) (*domain.Schedule, error) {
	s.lastUpdate = update
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.schedule, nil
}

func (s *stubScheduleRepo) Delete(ctx context.Context, id string) error {
	s.deletedID = id
	return s.deleteErr
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func sampleSchedule() *domain.Schedule {
	return &domain.Schedule{
		ID:           "a3bb189e-8bf9-3888-9912-ace4e6543002",
		WashType:     domain.WashTypeSimple,
		VehiclePlate: "ABC1234",
		SlotStart:    time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		Confirmation: true,
	}
}

func TestGetByID(t *testing.T) {
	t.Run("returns the schedule", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{schedule: sampleSchedule()}, nopLogger{})

		got, err := svc.GetByID(context.Background(), "a3bb189e-8bf9-3888-9912-ace4e6543002")
		require.NoError(t, err)
		assert.Equal(t, "SIMPLE", got.ServiceType)
		assert.Equal(t, "ABC1234", got.VehiclePlate)
	})

	t.Run("maps not found", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{findErr: scheduleRepo.ErrScheduleNotFound}, nopLogger{})

		_, err := svc.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrScheduleNotFound)
	})

	t.Run("wraps repository failure", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{findErr: errors.New("boom")}, nopLogger{})

		_, err := svc.GetByID(context.Background(), "any")
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestList(t *testing.T) {
	svc := NewService(&stubScheduleRepo{
		list: []*domain.Schedule{sampleSchedule(), sampleSchedule()},
	}, nopLogger{})

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, got.Total)
	assert.Len(t, got.Schedules, 2)
}

func TestList_Empty(t *testing.T) {
	svc := NewService(&stubScheduleRepo{}, nopLogger{})

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Total)
	assert.NotNil(t, got.Schedules)
}

func TestUpdate(t *testing.T) {
	t.Run("passes the partial update through without re-validation", func(t *testing.T) {
		repo := &stubScheduleRepo{schedule: sampleSchedule()}
		svc := NewService(repo, nopLogger{})

		// Neither the plate format nor the slot rules are re-checked on
		// update; only the wash type enum is.
		saturday := time.Date(2026, 9, 5, 23, 0, 0, 0, time.UTC)
		_, err := svc.Update(context.Background(), "a3bb189e-8bf9-3888-9912-ace4e6543002", &models.UpdateScheduleRequest{
			ServiceType:  ptr.Ptr("COMPLETE"),
			VehiclePlate: ptr.Ptr("not-a-plate"),
			SlotStart:    &saturday,
		})

		require.NoError(t, err)
		require.NotNil(t, repo.lastUpdate)
		assert.Equal(t, domain.WashTypeComplete, *repo.lastUpdate.WashType)
		assert.Equal(t, "not-a-plate", *repo.lastUpdate.VehiclePlate)
		assert.True(t, repo.lastUpdate.SlotStart.Equal(saturday))
	})

	t.Run("rejects unknown wash type", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{schedule: sampleSchedule()}, nopLogger{})

		_, err := svc.Update(context.Background(), "id", &models.UpdateScheduleRequest{
			ServiceType: ptr.Ptr("DELUXE"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("normalizes slot start to UTC", func(t *testing.T) {
		repo := &stubScheduleRepo{schedule: sampleSchedule()}
		svc := NewService(repo, nopLogger{})

		saoPaulo := time.FixedZone("America/Sao_Paulo", -3*3600)
		local := time.Date(2026, 9, 1, 10, 0, 0, 0, saoPaulo)

		_, err := svc.Update(context.Background(), "id", &models.UpdateScheduleRequest{
			SlotStart: &local,
		})

		require.NoError(t, err)
		require.NotNil(t, repo.lastUpdate.SlotStart)
		assert.Equal(t, time.UTC, repo.lastUpdate.SlotStart.Location())
	})

	t.Run("maps not found", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{updateErr: scheduleRepo.ErrScheduleNotFound}, nopLogger{})

		_, err := svc.Update(context.Background(), "missing", &models.UpdateScheduleRequest{
			Confirmation: ptr.Ptr(true),
		})
		assert.ErrorIs(t, err, ErrScheduleNotFound)
	})
}

func TestDelete(t *testing.T) {
	t.Run("returns the removed record", func(t *testing.T) {
		repo := &stubScheduleRepo{schedule: sampleSchedule()}
		svc := NewService(repo, nopLogger{})

		got, err := svc.Delete(context.Background(), "a3bb189e-8bf9-3888-9912-ace4e6543002")
		require.NoError(t, err)
		assert.Equal(t, "ABC1234", got.VehiclePlate)
		assert.Equal(t, "a3bb189e-8bf9-3888-9912-ace4e6543002", repo.deletedID)
	})

	t.Run("maps not found", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{findErr: scheduleRepo.ErrScheduleNotFound}, nopLogger{})

		_, err := svc.Delete(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrScheduleNotFound)
	})

	t.Run("wraps delete failure", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{
			schedule:  sampleSchedule(),
			deleteErr: errors.New("boom"),
		}, nopLogger{})

		_, err := svc.Delete(context.Background(), "id")
		assert.ErrorIs(t, err, ErrInternal)
	})
}

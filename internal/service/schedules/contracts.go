package schedules

import (
	"context"

	"github.com/tcsoares1914/test-gbi-backend/internal/domain"
)

// ScheduleRepository is the storage surface the service consumes.
type ScheduleRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Schedule, error)
	FindAll(ctx context.Context) ([]*domain.Schedule, error)
	Update(ctx context.Context, id string, update *domain.ScheduleUpdate) (*domain.Schedule, error)
	Delete(ctx context.Context, id string) error
}

// Logger is the logging surface consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

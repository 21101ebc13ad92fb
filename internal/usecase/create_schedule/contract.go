package create_schedule

import (
	"context"
	"time"

	"github.com/tcsoares1914/test-gbi-backend/internal/domain"
)

// ScheduleRepository is the slice of the storage layer the engine needs.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	FindBetween(ctx context.Context, start, end time.Time) ([]*domain.Schedule, error)
}

// TransactionManager serializes the availability probe and the insert.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface consumed by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

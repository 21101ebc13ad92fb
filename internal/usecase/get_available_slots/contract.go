package get_available_slots

import (
	"context"
	"time"

	"github.com/tcsoares1914/test-gbi-backend/internal/domain"
)

// ScheduleRepository is the slice of the storage layer this use case needs.
type ScheduleRepository interface {
	FindBetween(ctx context.Context, start, end time.Time) ([]*domain.Schedule, error)
}

// Logger is the logging surface consumed by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

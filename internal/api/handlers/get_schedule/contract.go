package get_schedule

import (
	"context"

	"github.com/tcsoares1914/test-gbi-backend/internal/service/schedules/models"
)

type ScheduleService interface {
	GetByID(ctx context.Context, id string) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

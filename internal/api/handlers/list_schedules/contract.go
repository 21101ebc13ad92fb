package list_schedules

import (
	"context"

	"github.com/tcsoares1914/test-gbi-backend/internal/service/schedules/models"
)

type ScheduleService interface {
	List(ctx context.Context) (*models.ScheduleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_schedule

import (
	"context"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
)

// ScheduleRepository читающий интерфейс репозитория слотов
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

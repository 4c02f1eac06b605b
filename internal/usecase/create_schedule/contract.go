package create_schedule

import (
	"context"
	"time"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
)

// ScheduleRepository интерфейс репозитория слотов расписания
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	ListBlockingForRoomDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Schedule, error)
}

// CatalogService интерфейс сервиса справочных данных (комнаты и квесты)
type CatalogService interface {
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
	GetQuest(ctx context.Context, id int64) (*domain.Quest, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

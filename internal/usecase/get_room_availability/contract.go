package get_room_availability

import (
	"context"
	"time"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
)

// ScheduleRepository интерфейс репозитория слотов расписания
type ScheduleRepository interface {
	ListBlockingForRoomDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Schedule, error)
}

// CatalogService интерфейс сервиса справочных данных (комнаты и квесты)
type CatalogService interface {
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
	GetQuest(ctx context.Context, id int64) (*domain.Quest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_booking

import (
	"context"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
)

// ScheduleRepository интерфейс репозитория слотов расписания
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveByScheduleID(ctx context.Context, scheduleID int64) (*domain.Booking, error)
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

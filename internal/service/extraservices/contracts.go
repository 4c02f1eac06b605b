package extraservices

import (
	"context"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
)

// ServiceRepository интерфейс репозитория дополнительных услуг
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.ExtraService) (*domain.ExtraService, error)
	GetByID(ctx context.Context, id int64) (*domain.ExtraService, error)
	Update(ctx context.Context, svc *domain.ExtraService) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
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

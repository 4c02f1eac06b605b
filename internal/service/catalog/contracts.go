package catalog

import (
	"context"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
)

// CatalogRepository интерфейс репозитория справочных данных
type CatalogRepository interface {
	GetRoomByID(ctx context.Context, id int64) (*domain.Room, error)
	GetQuestByID(ctx context.Context, id int64) (*domain.Quest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_room

import (
	"context"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
)

type CatalogService interface {
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

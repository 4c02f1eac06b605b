package get_quest

import (
	"context"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
)

type CatalogService interface {
	GetQuest(ctx context.Context, id int64) (*domain.Quest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	"github.com/blackrooms/BR-ReservationService/pkg/dbmetrics"
	"github.com/blackrooms/BR-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий справочных данных (комнаты и квесты)
// Ядро бронирования только читает каталог; записи делает внешний
// административный сервис
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRoomByID получает комнату по ID
func (r *Repository) GetRoomByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"type",
		"capacity",
		"is_available",
	).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomByID - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.Title,
		&room.Type,
		&room.Capacity,
		&room.IsAvailable,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomByID - scan room: %w", ErrScanRow, err)
	}

	return &room, nil
}

// GetQuestByID получает квест по ID
func (r *Repository) GetQuestByID(ctx context.Context, id int64) (*domain.Quest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"description",
		"difficulty",
		"duration_minutes",
		"price",
	).
		From("quests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetQuestByID - build select query: %v", ErrBuildQuery, err)
	}

	var quest domain.Quest
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&quest.ID,
		&quest.Title,
		&quest.Description,
		&quest.Difficulty,
		&quest.DurationMinutes,
		&quest.Price,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrQuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetQuestByID - scan quest: %w", ErrScanRow, err)
	}

	return &quest, nil
}

package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	"github.com/blackrooms/BR-ReservationService/pkg/dbmetrics"
	"github.com/blackrooms/BR-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со слотами расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот расписания
// Вызывается только аллокатором внутри сериализуемой транзакции,
// после проверки пересечений через ListBlockingForRoomDate
func (r *Repository) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedules").
		Columns(
			"quest_id",
			"room_id",
			"date",
			"start_time",
			"end_time",
		).
		Values(
			schedule.QuestID,
			schedule.RoomID,
			schedule.Date,
			schedule.StartTime,
			schedule.EndTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time

	return schedule, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"quest_id",
		"room_id",
		"date",
		"start_time",
		"end_time",
		"created_at",
	).
		From("schedules").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку слота: операции над одним слотом
	// (привязка бронирования) должны быть взаимоисключающими
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Schedule
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.QuestID,
		&s.RoomID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %w", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time

	return &s, nil
}

// ListBlockingForRoomDate возвращает слоты комнаты на дату, занимающие интервалы.
// Слот занимает интервал, если у него либо еще нет бронирования (только что
// создан, ожидает привязки), либо есть неотмененное бронирование.
// Слот, все бронирования которого отменены, интервал освобождает, но
// остается в таблице для истории.
//
// Внутри транзакции строки расписания блокируются FOR UPDATE - это
// критическая секция аллокатора: проверка пересечений и вставка нового
// слота должны быть неделимы.
func (r *Repository) ListBlockingForRoomDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"s.id",
		"s.quest_id",
		"s.room_id",
		"s.date",
		"s.start_time",
		"s.end_time",
		"s.created_at",
	).
		From("schedules s").
		Where(squirrel.Eq{"s.room_id": roomID, "s.date": date}).
		Where(squirrel.Or{
			squirrel.Expr("NOT EXISTS (SELECT 1 FROM bookings b WHERE b.schedule_id = s.id)"),
			squirrel.Expr("EXISTS (SELECT 1 FROM bookings b WHERE b.schedule_id = s.id AND b.status <> ?)", domain.StatusCancelled),
		}).
		OrderBy("s.start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF s")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingForRoomDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingForRoomDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// scanSchedules сканирует результаты запроса в слайс слотов
func (r *Repository) scanSchedules(rows *sql.Rows) ([]*domain.Schedule, error) {
	schedules := make([]*domain.Schedule, 0)

	for rows.Next() {
		var s domain.Schedule
		var createdAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.QuestID,
			&s.RoomID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %w", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time

		schedules = append(schedules, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows error: %w", ErrScanRow, err)
	}

	return schedules, nil
}

package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	"github.com/blackrooms/BR-ReservationService/pkg/dbmetrics"
	"github.com/blackrooms/BR-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с платежами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет платеж к бронированию
// Вызывается внутри транзакции вместе с пересчетом порога оплаты
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"booking_id",
			"method",
			"amount",
			"date",
		).
		Values(
			payment.BookingID,
			payment.Method,
			payment.Amount,
			payment.Date,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&payment.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	payment.CreatedAt = createdAt.Time

	return payment, nil
}

// SumByBookingID возвращает сумму всех платежей бронирования
func (r *Repository) SumByBookingID(ctx context.Context, bookingID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("payments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	var sum int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%w: SumByBookingID - scan sum: %w", ErrScanRow, err)
	}

	return sum, nil
}

// ListByBookingID возвращает все платежи бронирования
func (r *Repository) ListByBookingID(ctx context.Context, bookingID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"method",
		"amount",
		"date",
		"created_at",
	).
		From("payments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("date ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBookingID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		var createdAt sql.NullTime

		if err := rows.Scan(&p.ID, &p.BookingID, &p.Method, &p.Amount, &p.Date, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListByBookingID - scan row: %w", ErrScanRow, err)
		}

		p.CreatedAt = createdAt.Time
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBookingID - rows error: %w", ErrScanRow, err)
	}

	return payments, nil
}

package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/blackrooms/BR-ReservationService/pkg/dbmetrics"
)

// Количество попыток и базовая задержка между ретраями сериализуемой транзакции
const (
	maxRetries   = 3
	retryBackoff = 20 * time.Millisecond
)

var (
	// ErrRetriesExceeded возвращается, когда транзакция не смогла
	// закоммититься за maxRetries попыток из-за конфликтов сериализации.
	// Ошибка ретраибельна на стороне вызывающего
	ErrRetriesExceeded = errors.New("txmanager: serialization retries exceeded")
)

// TxBeginner интерфейс открытия транзакций
// Реализуется *dbmetrics.DB
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager менеджер сериализуемых транзакций с ретраями
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает менеджер транзакций поверх БД с метриками
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри транзакции с уровнем изоляции SERIALIZABLE.
// Активная транзакция передается в fn через контекст (dbmetrics.WithTx);
// репозитории подхватывают её через dbmetrics.GetExecutor.
//
// Конфликты сериализации (SQLSTATE 40001) и дедлоки (40P01) ретраятся
// с backoff до maxRetries попыток. Бизнес-ошибки из fn не ретраятся.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
		}

		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isSerializationFailure(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: %v", ErrRetriesExceeded, lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("txmanager: begin tx: %w", err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit: %w", err)
	}

	return nil
}

// isSerializationFailure проверяет, что ошибка — конфликт сериализации или дедлок
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}

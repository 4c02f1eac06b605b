package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackrooms/BR-ReservationService/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr error
}

func (f *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (f *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (f *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (f *fakeTx) Commit() error   { return f.commitErr }
func (f *fakeTx) Rollback() error { return nil }

type fakeTxBeginner struct {
	begins    int
	commitErr error
}

func (f *fakeTxBeginner) BeginTx(_ context.Context, _ *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	f.begins++
	return &fakeTx{commitErr: f.commitErr}, nil
}

func serializationErr() *pq.Error {
	return &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}
}

func TestDoSerializable_RetriesStatementSerializationFailure(t *testing.T) {
	db := &fakeTxBeginner{}
	m := NewTransactionManager(db)

	// Ошибка драйвера, обернутая по цепочке репозиторий -> сервис
	errScan := errors.New("storage: scan row")
	errInternal := errors.New("service: internal")
	wrapped := fmt.Errorf("%w: ChangeStatus - get booking: %w",
		errInternal, fmt.Errorf("%w: GetByID - scan booking: %w", errScan, serializationErr()))

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return wrapped
	})

	assert.Equal(t, maxRetries, db.begins)
	require.ErrorIs(t, err, ErrRetriesExceeded)
}

func TestDoSerializable_RetriesCommitSerializationFailure(t *testing.T) {
	db := &fakeTxBeginner{commitErr: serializationErr()}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.Equal(t, maxRetries, db.begins)
	require.ErrorIs(t, err, ErrRetriesExceeded)
}

func TestDoSerializable_BusinessErrorNotRetried(t *testing.T) {
	db := &fakeTxBeginner{}
	m := NewTransactionManager(db)

	errBusiness := errors.New("slot conflict")
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return errBusiness
	})

	assert.Equal(t, 1, db.begins)
	assert.ErrorIs(t, err, errBusiness)
}

func TestDoSerializable_SucceedsAfterRetry(t *testing.T) {
	db := &fakeTxBeginner{}
	m := NewTransactionManager(db)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return fmt.Errorf("lock schedule: %w", serializationErr())
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, db.begins)
}

func TestDoSerializable_TxInContext(t *testing.T) {
	db := &fakeTxBeginner{}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})
	require.NoError(t, err)
}

//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"

	"promo-engine/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBeginner struct {
	begun   []pgx.TxOptions
	beginFn func(attempt int) (pgx.Tx, error)
}

func (f *fakeBeginner) BeginTx(_ context.Context, options pgx.TxOptions) (pgx.Tx, error) {
	attempt := len(f.begun)
	f.begun = append(f.begun, options)
	if f.beginFn != nil {
		return f.beginFn(attempt)
	}
	return &fakeTx{}, nil
}

type fakeTx struct {
	commits   int
	rollbacks int
	commitErr error
}

func (t *fakeTx) Commit(context.Context) error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rollbacks++
	return pgx.ErrTxClosed
}

func (t *fakeTx) Begin(context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Conn() *pgx.Conn { return nil }

func (t *fakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *fakeTx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *fakeTx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }

func (t *fakeTx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *fakeTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (t *fakeTx) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }

func TestWithin(t *testing.T) {
	t.Run("runs the callback in a serializable transaction", func(t *testing.T) {
		tx := &fakeTx{}
		beginner := &fakeBeginner{beginFn: func(int) (pgx.Tx, error) { return tx, nil }}
		u := &PostgresUoW{db: beginner}

		calls := 0
		err := u.Within(context.Background(), func(_ context.Context, _ usecase.Tx) error {
			calls++
			return nil
		})
		require.NoError(t, err)

		require.Len(t, beginner.begun, 1)
		assert.Equal(t, pgx.Serializable, beginner.begun[0].IsoLevel)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, tx.commits)
		assert.Equal(t, 0, tx.rollbacks)
	})

	t.Run("retries on serialization failure until the callback succeeds", func(t *testing.T) {
		beginner := &fakeBeginner{}
		u := &PostgresUoW{db: beginner}

		attempts := 0
		err := u.Within(context.Background(), func(_ context.Context, _ usecase.Tx) error {
			attempts++
			if attempts == 1 {
				return &pgconn.PgError{Code: pgErrCodeSerializationFailure}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
		assert.Len(t, beginner.begun, 2)
	})

	t.Run("does not retry callback errors that are not retryable", func(t *testing.T) {
		beginner := &fakeBeginner{}
		u := &PostgresUoW{db: beginner}

		boom := errors.New("boom")
		attempts := 0
		err := u.Within(context.Background(), func(_ context.Context, _ usecase.Tx) error {
			attempts++
			return boom
		})
		require.ErrorIs(t, err, boom)
		assert.Equal(t, 1, attempts)
		assert.Len(t, beginner.begun, 1)
	})

	t.Run("gives up after max retries on persistent deadlock", func(t *testing.T) {
		beginner := &fakeBeginner{}
		u := &PostgresUoW{db: beginner}

		err := u.Within(context.Background(), func(_ context.Context, _ usecase.Tx) error {
			return &pgconn.PgError{Code: pgErrCodeDeadlockDetected}
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errMaxRetriesExceeded)
		assert.Len(t, beginner.begun, 4)
	})

	t.Run("rolls back when the callback fails", func(t *testing.T) {
		tx := &fakeTx{}
		beginner := &fakeBeginner{beginFn: func(int) (pgx.Tx, error) { return tx, nil }}
		u := &PostgresUoW{db: beginner}

		err := u.Within(context.Background(), func(_ context.Context, _ usecase.Tx) error {
			return errors.New("boom")
		})
		require.Error(t, err)
		assert.Equal(t, 0, tx.commits)
		assert.Equal(t, 1, tx.rollbacks)
	})
}

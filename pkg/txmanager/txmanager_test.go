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

	"github.com/mundoinsolito/manicura/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr  error
	rolledBack bool
	committed  bool
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	begins    int
	commitErr func(attempt int) error
}

func (b *fakeBeginner) BeginTx(context.Context, *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	return &fakeTx{commitErr: b.commitErr(b.begins)}, nil
}

func serializationErr() error {
	return &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}
}

func TestDoSerializable_RetriesOnCommitConflict(t *testing.T) {
	beginner := &fakeBeginner{commitErr: func(int) error { return serializationErr() }}
	manager := NewTransactionManager(beginner)

	err := manager.DoSerializable(context.Background(), func(context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTxFailed)
	assert.Equal(t, maxRetries, beginner.begins)
}

func TestDoSerializable_SucceedsAfterRetry(t *testing.T) {
	beginner := &fakeBeginner{commitErr: func(attempt int) error {
		if attempt == 1 {
			return serializationErr()
		}
		return nil
	}}
	manager := NewTransactionManager(beginner)

	calls := 0
	err := manager.DoSerializable(context.Background(), func(context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, beginner.begins)
	assert.Equal(t, 2, calls)
}

func TestDoSerializable_RetriesOnFlattenedRepositoryError(t *testing.T) {
	// Репозитории оборачивают ошибки через %v, теряя цепочку errors.As
	beginner := &fakeBeginner{commitErr: func(int) error { return nil }}
	manager := NewTransactionManager(beginner)

	err := manager.DoSerializable(context.Background(), func(context.Context) error {
		return fmt.Errorf("exec query: GetWithFilter - execute select query: %v", serializationErr())
	})

	require.Error(t, err)
	assert.Equal(t, maxRetries, beginner.begins)
}

func TestDoSerializable_NoRetryOnOtherErrors(t *testing.T) {
	beginner := &fakeBeginner{commitErr: func(int) error { return nil }}
	manager := NewTransactionManager(beginner)

	boom := errors.New("boom")
	err := manager.DoSerializable(context.Background(), func(context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, beginner.begins)
}

func TestDo_CommitErrorKeepsCause(t *testing.T) {
	beginner := &fakeBeginner{commitErr: func(int) error { return serializationErr() }}
	manager := NewTransactionManager(beginner)

	err := manager.Do(context.Background(), func(context.Context) error {
		return nil
	})

	require.Error(t, err)
	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))
}

package appointment

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentwise/booking-service/internal/domain"
	"github.com/dentwise/booking-service/pkg/dbmetrics"
)

// captureExecutor записывает сгенерированный SQL и обрывает выполнение
type captureExecutor struct {
	queries []string
}

var errStub = errors.New("capture executor: no rows")

func (c *captureExecutor) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	c.queries = append(c.queries, query)
	return nil, errStub
}

func (c *captureExecutor) QueryContext(_ context.Context, query string, _ ...interface{}) (*sql.Rows, error) {
	c.queries = append(c.queries, query)
	return nil, errStub
}

func (c *captureExecutor) QueryRowContext(_ context.Context, query string, _ ...interface{}) *sql.Row {
	c.queries = append(c.queries, query)
	return nil
}

func (c *captureExecutor) Commit() error   { return nil }
func (c *captureExecutor) Rollback() error { return nil }

func TestFindBookedTimes_LocksRowsInsideTransaction(t *testing.T) {
	executor := &captureExecutor{}
	repo := NewRepository(executor)

	doctorID := "6f1577b5-78d4-4b63-bc77-8764c9a19a83"
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	// Путь создания записи: чтение занятых слотов идет внутри транзакции
	ctx := dbmetrics.WithExecutor(context.Background(), executor)
	_, err := repo.FindBookedTimes(ctx, doctorID, date, domain.OccupyingStatuses)
	assert.ErrorIs(t, err, ErrExecQuery)

	require.Len(t, executor.queries, 1)
	assert.Contains(t, executor.queries[0], "FOR UPDATE")
}

func TestFindBookedTimes_NoLockOutsideTransaction(t *testing.T) {
	executor := &captureExecutor{}
	repo := NewRepository(executor)

	doctorID := "6f1577b5-78d4-4b63-bc77-8764c9a19a83"
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	_, err := repo.FindBookedTimes(context.Background(), doctorID, date, domain.OccupyingStatuses)
	assert.ErrorIs(t, err, ErrExecQuery)

	require.Len(t, executor.queries, 1)
	assert.NotContains(t, executor.queries[0], "FOR UPDATE")
}

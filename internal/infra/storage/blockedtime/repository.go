package blockedtime

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mundoinsolito/manicura/internal/domain"
	"github.com/mundoinsolito/manicura/pkg/dbmetrics"
	"github.com/mundoinsolito/manicura/pkg/psqlbuilder"
)

var blockedTimeColumns = []string{
	"id",
	"date",
	"start_time",
	"end_time",
	"reason",
	"full_day",
	"created_at",
}

// Repository репозиторий заблокированных интервалов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блокировку интервала
func (r *Repository) Create(ctx context.Context, bt *domain.BlockedTime) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	bt.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("blocked_times").
		Columns("id", "date", "start_time", "end_time", "reason", "full_day").
		Values(bt.ID, bt.Date, bt.StartTime, bt.EndTime, bt.Reason, bt.FullDay).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	bt.CreatedAt = createdAt.Time

	return bt, nil
}

// GetByDate получает блокировки на указанную дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.BlockedTime, error) {
	return r.list(ctx, squirrel.Eq{"date": date}, "GetByDate")
}

// List получает все блокировки, отсортированные по дате
func (r *Repository) List(ctx context.Context) ([]*domain.BlockedTime, error) {
	return r.list(ctx, nil, "List")
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_times").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedTimeNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, where squirrel.Eq, op string) ([]*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(blockedTimeColumns...).
		From("blocked_times").
		OrderBy("date ASC", "start_time ASC")

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	blocked := make([]*domain.BlockedTime, 0)
	for rows.Next() {
		var bt domain.BlockedTime
		var createdAt sql.NullTime

		err := rows.Scan(
			&bt.ID,
			&bt.Date,
			&bt.StartTime,
			&bt.EndTime,
			&bt.Reason,
			&bt.FullDay,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		bt.CreatedAt = createdAt.Time
		blocked = append(blocked, &bt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return blocked, nil
}

package transaction

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

var transactionColumns = []string{
	"id",
	"type",
	"amount",
	"description",
	"appointment_id",
	"date",
	"created_at",
}

// Filter параметры выборки записей кассовой книги
type Filter struct {
	Type      domain.TransactionType
	StartDate *time.Time
	EndDate   *time.Time
}

// Repository репозиторий кассовой книги
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кассовой книги
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись о доходе или расходе
func (r *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	t.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("transactions").
		Columns("id", "type", "amount", "description", "appointment_id", "date").
		Values(t.ID, t.Type, t.Amount, t.Description, t.AppointmentID, t.Date).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time

	return t, nil
}

// GetWithFilter получает записи по фильтру, новые сначала
func (r *Repository) GetWithFilter(ctx context.Context, filter Filter) ([]*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(transactionColumns...).
		From("transactions").
		OrderBy("date DESC", "created_at DESC")

	if filter.Type != "" {
		builder = builder.Where(squirrel.Eq{"type": filter.Type})
	}
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"date": *filter.EndDate})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		var t domain.Transaction
		var createdAt sql.NullTime

		err := rows.Scan(
			&t.ID,
			&t.Type,
			&t.Amount,
			&t.Description,
			&t.AppointmentID,
			&t.Date,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWithFilter - scan row: %v", ErrScanRow, err)
		}

		t.CreatedAt = createdAt.Time
		transactions = append(transactions, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - rows error: %v", ErrScanRow, err)
	}

	return transactions, nil
}

// Delete удаляет запись кассовой книги
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("transactions").
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
		return ErrTransactionNotFound
	}

	return nil
}

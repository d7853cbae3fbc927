package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mundoinsolito/manicura/internal/domain"
	"github.com/mundoinsolito/manicura/pkg/dbmetrics"
	"github.com/mundoinsolito/manicura/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки Postgres при нарушении уникального индекса
const uniqueViolationCode = "23505"

var clientColumns = []string{
	"id",
	"name",
	"phone",
	"cedula",
	"email",
	"health_alerts",
	"preferences",
	"favorite_colors",
	"nail_shape",
	"notes",
	"created_at",
}

// Repository репозиторий для работы с клиентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового клиента
// Уникальность cédula обеспечивается индексом в БД
func (r *Repository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	client.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("clients").
		Columns(
			"id",
			"name",
			"phone",
			"cedula",
			"email",
			"health_alerts",
			"preferences",
			"favorite_colors",
			"nail_shape",
			"notes",
		).
		Values(
			client.ID,
			client.Name,
			client.Phone,
			client.Cedula,
			client.Email,
			client.HealthAlerts,
			client.Preferences,
			client.FavoriteColors,
			client.NailShape,
			client.Notes,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCedula
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	client.CreatedAt = createdAt.Time

	return client, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByCedula получает клиента по cédula
// Основной способ поиска: клиентка называет cédula при бронировании
func (r *Repository) GetByCedula(ctx context.Context, cedula string) (*domain.Client, error) {
	return r.getOne(ctx, squirrel.Eq{"cedula": cedula}, "GetByCedula")
}

// List получает всех клиентов, отсортированных по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return clients, nil
}

// Update обновляет данные клиента
func (r *Repository) Update(ctx context.Context, id string, client *domain.Client) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("clients").
		Set("name", client.Name).
		Set("phone", client.Phone).
		Set("email", client.Email).
		Set("health_alerts", client.HealthAlerts).
		Set("preferences", client.Preferences).
		Set("favorite_colors", client.FavoriteColors).
		Set("nail_shape", client.NailShape).
		Set("notes", client.Notes).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Delete удаляет клиента
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("clients").
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
		return ErrClientNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	client, err := scanClient(executor.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan client: %v", ErrScanRow, op, err)
	}

	return client, nil
}

func scanClient(scan func(dest ...interface{}) error) (*domain.Client, error) {
	var client domain.Client
	var createdAt sql.NullTime

	err := scan(
		&client.ID,
		&client.Name,
		&client.Phone,
		&client.Cedula,
		&client.Email,
		&client.HealthAlerts,
		&client.Preferences,
		&client.FavoriteColors,
		&client.NailShape,
		&client.Notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	client.CreatedAt = createdAt.Time
	return &client, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}

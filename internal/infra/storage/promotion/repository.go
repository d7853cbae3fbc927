package promotion

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mundoinsolito/manicura/internal/domain"
	"github.com/mundoinsolito/manicura/pkg/dbmetrics"
	"github.com/mundoinsolito/manicura/pkg/psqlbuilder"
)

var promotionColumns = []string{
	"p.id",
	"p.title",
	"p.description",
	"p.image_url",
	"p.service_id",
	"p.original_price",
	"p.discount_percent",
	"p.discount_amount",
	"p.valid_from",
	"p.valid_until",
	"p.is_active",
	"p.created_at",
	"s.id",
	"s.name",
	"s.price",
	"s.duration",
}

// Repository репозиторий промоакций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промоакций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает промоакцию
func (r *Repository) Create(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	p.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("promotions").
		Columns(
			"id",
			"title",
			"description",
			"image_url",
			"service_id",
			"original_price",
			"discount_percent",
			"discount_amount",
			"valid_from",
			"valid_until",
			"is_active",
		).
		Values(
			p.ID,
			p.Title,
			p.Description,
			p.ImageURL,
			p.ServiceID,
			p.OriginalPrice,
			p.DiscountPercent,
			p.DiscountAmount,
			p.ValidFrom,
			p.ValidUntil,
			p.IsActive,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time

	return p, nil
}

// GetByID получает промоакцию по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectJoined().
		Where(squirrel.Eq{"p.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPromotion(executor.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPromotionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan promotion: %v", ErrScanRow, err)
	}

	return p, nil
}

// List получает промоакции с привязанными услугами
// При onlyActive = true возвращает только активные (без проверки дат:
// окно действия оценивается на уровне сервиса относительно текущего дня)
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := selectJoined().OrderBy("p.valid_until ASC")
	if onlyActive {
		builder = builder.Where(squirrel.Eq{"p.is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	promotions := make([]*domain.Promotion, 0)
	for rows.Next() {
		p, err := scanPromotion(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		promotions = append(promotions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return promotions, nil
}

// Update обновляет промоакцию
func (r *Repository) Update(ctx context.Context, id string, p *domain.Promotion) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promotions").
		Set("title", p.Title).
		Set("description", p.Description).
		Set("image_url", p.ImageURL).
		Set("service_id", p.ServiceID).
		Set("original_price", p.OriginalPrice).
		Set("discount_percent", p.DiscountPercent).
		Set("discount_amount", p.DiscountAmount).
		Set("valid_from", p.ValidFrom).
		Set("valid_until", p.ValidUntil).
		Set("is_active", p.IsActive).
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
		return ErrPromotionNotFound
	}

	return nil
}

// Delete удаляет промоакцию
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("promotions").
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
		return ErrPromotionNotFound
	}

	return nil
}

func selectJoined() squirrel.SelectBuilder {
	return psqlbuilder.Select(promotionColumns...).
		From("promotions p").
		LeftJoin("services s ON s.id = p.service_id")
}

func scanPromotion(scan func(dest ...interface{}) error) (*domain.Promotion, error) {
	var p domain.Promotion
	var createdAt sql.NullTime
	var svcID, svcName sql.NullString
	var svcPrice sql.NullFloat64
	var svcDuration sql.NullInt64

	err := scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.ImageURL,
		&p.ServiceID,
		&p.OriginalPrice,
		&p.DiscountPercent,
		&p.DiscountAmount,
		&p.ValidFrom,
		&p.ValidUntil,
		&p.IsActive,
		&createdAt,
		&svcID,
		&svcName,
		&svcPrice,
		&svcDuration,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	if svcID.Valid {
		p.Service = &domain.Service{
			ID:       svcID.String,
			Name:     svcName.String,
			Price:    svcPrice.Float64,
			Duration: int(svcDuration.Int64),
		}
	}

	return &p, nil
}

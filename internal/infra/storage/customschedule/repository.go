package customschedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mundoinsolito/manicura/internal/domain"
	"github.com/mundoinsolito/manicura/pkg/dbmetrics"
	"github.com/mundoinsolito/manicura/pkg/psqlbuilder"
	"github.com/mundoinsolito/manicura/pkg/types"
)

var scheduleColumns = []string{
	"id",
	"date",
	"hours",
	"created_at",
}

// Repository репозиторий расписаний на конкретные даты
// На одну дату существует максимум одна запись (уникальный индекс по date)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает расписание на дату
// Возвращает ErrScheduleNotFound если расписание не задано
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.CustomSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("custom_schedules").
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	cs, err := scanSchedule(executor.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan schedule: %v", ErrScanRow, err)
	}

	return cs, nil
}

// List получает все расписания, отсортированные по дате
func (r *Repository) List(ctx context.Context) ([]*domain.CustomSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("custom_schedules").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.CustomSchedule, 0)
	for rows.Next() {
		cs, err := scanSchedule(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, cs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// Upsert сохраняет расписание на дату, заменяя существующее
// Пустой список часов допустим и означает закрытый день
func (r *Repository) Upsert(ctx context.Context, cs *domain.CustomSchedule) (*domain.CustomSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if cs.ID == "" {
		cs.ID = uuid.NewString()
	}

	hours := make(pq.StringArray, 0, len(cs.Hours))
	for _, h := range cs.Hours {
		hours = append(hours, h.String())
	}

	query, args, err := psqlbuilder.Insert("custom_schedules").
		Columns("id", "date", "hours").
		Values(cs.ID, cs.Date, hours).
		Suffix(`ON CONFLICT (date) DO UPDATE SET hours = EXCLUDED.hours
			RETURNING id, created_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&cs.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	cs.CreatedAt = createdAt.Time

	return cs, nil
}

// DeleteByDate удаляет расписание на дату, возвращая день к общим правилам
func (r *Repository) DeleteByDate(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("custom_schedules").
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

func scanSchedule(scan func(dest ...interface{}) error) (*domain.CustomSchedule, error) {
	var cs domain.CustomSchedule
	var hours pq.StringArray
	var createdAt sql.NullTime

	if err := scan(&cs.ID, &cs.Date, &hours, &createdAt); err != nil {
		return nil, err
	}

	cs.Hours = make([]types.TimeString, 0, len(hours))
	for _, h := range hours {
		cs.Hours = append(cs.Hours, types.TimeString(h))
	}
	cs.CreatedAt = createdAt.Time

	return &cs, nil
}

package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/mundoinsolito/manicura/internal/domain"
	"github.com/mundoinsolito/manicura/pkg/dbmetrics"
	"github.com/mundoinsolito/manicura/pkg/psqlbuilder"
	"github.com/mundoinsolito/manicura/pkg/types"
)

var settingsColumns = []string{
	"id",
	"business_name",
	"logo_url",
	"cover_image_url",
	"whatsapp_number",
	"reservation_amount",
	"opening_time",
	"closing_time",
	"time_slot_interval",
	"schedule_mode",
	"manual_hours",
	"primary_color",
	"accent_color",
	"created_at",
	"updated_at",
}

// Repository репозиторий настроек салона
// Таблица settings содержит единственную строку с id = domain.SettingsID
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает настройки салона
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("settings").
		Where(squirrel.Eq{"id": domain.SettingsID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Settings
	var manualHours pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.BusinessName,
		&s.LogoURL,
		&s.CoverImageURL,
		&s.WhatsAppNumber,
		&s.ReservationAmount,
		&s.OpeningTime,
		&s.ClosingTime,
		&s.TimeSlotInterval,
		&s.ScheduleMode,
		&manualHours,
		&s.PrimaryColor,
		&s.AccentColor,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.ManualHours = make([]types.TimeString, 0, len(manualHours))
	for _, h := range manualHours {
		s.ManualHours = append(s.ManualHours, types.TimeString(h))
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Upsert сохраняет настройки салона, создавая строку при первом сохранении
func (r *Repository) Upsert(ctx context.Context, s *domain.Settings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	manualHours := make(pq.StringArray, 0, len(s.ManualHours))
	for _, h := range s.ManualHours {
		manualHours = append(manualHours, h.String())
	}

	query, args, err := psqlbuilder.Insert("settings").
		Columns(
			"id",
			"business_name",
			"logo_url",
			"cover_image_url",
			"whatsapp_number",
			"reservation_amount",
			"opening_time",
			"closing_time",
			"time_slot_interval",
			"schedule_mode",
			"manual_hours",
			"primary_color",
			"accent_color",
		).
		Values(
			domain.SettingsID,
			s.BusinessName,
			s.LogoURL,
			s.CoverImageURL,
			s.WhatsAppNumber,
			s.ReservationAmount,
			s.OpeningTime,
			s.ClosingTime,
			s.TimeSlotInterval,
			s.ScheduleMode,
			manualHours,
			s.PrimaryColor,
			s.AccentColor,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			logo_url = EXCLUDED.logo_url,
			cover_image_url = EXCLUDED.cover_image_url,
			whatsapp_number = EXCLUDED.whatsapp_number,
			reservation_amount = EXCLUDED.reservation_amount,
			opening_time = EXCLUDED.opening_time,
			closing_time = EXCLUDED.closing_time,
			time_slot_interval = EXCLUDED.time_slot_interval,
			schedule_mode = EXCLUDED.schedule_mode,
			manual_hours = EXCLUDED.manual_hours,
			primary_color = EXCLUDED.primary_color,
			accent_color = EXCLUDED.accent_color,
			updated_at = now()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

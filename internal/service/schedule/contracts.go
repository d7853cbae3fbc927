package schedule

import (
	"context"
	"time"

	"github.com/mundoinsolito/manicura/internal/domain"
)

// BlockedTimeRepository интерфейс репозитория блокировок
type BlockedTimeRepository interface {
	Create(ctx context.Context, bt *domain.BlockedTime) (*domain.BlockedTime, error)
	List(ctx context.Context) ([]*domain.BlockedTime, error)
	Delete(ctx context.Context, id string) error
}

// CustomScheduleRepository интерфейс репозитория расписаний на даты
type CustomScheduleRepository interface {
	List(ctx context.Context) ([]*domain.CustomSchedule, error)
	Upsert(ctx context.Context, cs *domain.CustomSchedule) (*domain.CustomSchedule, error)
	DeleteByDate(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

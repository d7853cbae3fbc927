package promotions

import (
	"context"
	"time"

	"github.com/mundoinsolito/manicura/internal/domain"
)

// PromotionRepository интерфейс репозитория промоакций
type PromotionRepository interface {
	Create(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error)
	GetByID(ctx context.Context, id string) (*domain.Promotion, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Promotion, error)
	Update(ctx context.Context, id string, p *domain.Promotion) error
	Delete(ctx context.Context, id string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

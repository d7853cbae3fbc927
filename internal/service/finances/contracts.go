package finances

import (
	"context"

	"github.com/mundoinsolito/manicura/internal/domain"
	transactionRepo "github.com/mundoinsolito/manicura/internal/infra/storage/transaction"
)

// TransactionRepository интерфейс репозитория кассовой книги
type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	GetWithFilter(ctx context.Context, filter transactionRepo.Filter) ([]*domain.Transaction, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

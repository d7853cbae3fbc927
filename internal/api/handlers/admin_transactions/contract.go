package admin_transactions

import (
	"context"

	"github.com/mundoinsolito/manicura/internal/service/finances/models"
)

type FinancesService interface {
	Create(ctx context.Context, req *models.CreateTransactionRequest) (*models.TransactionResponse, error)
	List(ctx context.Context, req *models.GetTransactionsRequest) (*models.TransactionListResponse, error)
	Summary(ctx context.Context, req *models.GetTransactionsRequest) (*models.SummaryResponse, error)
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

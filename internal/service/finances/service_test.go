package finances

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mundoinsolito/manicura/internal/domain"
	transactionRepo "github.com/mundoinsolito/manicura/internal/infra/storage/transaction"
	"github.com/mundoinsolito/manicura/internal/service/finances/models"
)

type fakeTransactionRepo struct {
	transactions []*domain.Transaction
	lastFilter   transactionRepo.Filter
}

func (f *fakeTransactionRepo) Create(_ context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	created := *t
	created.ID = "tx-1"
	f.transactions = append(f.transactions, &created)
	return &created, nil
}

func (f *fakeTransactionRepo) GetWithFilter(_ context.Context, filter transactionRepo.Filter) ([]*domain.Transaction, error) {
	f.lastFilter = filter
	return f.transactions, nil
}

func (f *fakeTransactionRepo) Delete(_ context.Context, _ string) error {
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSummary_ComputesBalance(t *testing.T) {
	repo := &fakeTransactionRepo{
		transactions: []*domain.Transaction{
			{ID: "1", Type: domain.TransactionIncome, Amount: 100},
			{ID: "2", Type: domain.TransactionIncome, Amount: 25.50},
			{ID: "3", Type: domain.TransactionExpense, Amount: 40},
		},
	}
	svc := NewService(repo, nopLogger{})

	summary, err := svc.Summary(context.Background(), &models.GetTransactionsRequest{})

	require.NoError(t, err)
	assert.Equal(t, 125.50, summary.TotalIncome)
	assert.Equal(t, 40.0, summary.TotalExpense)
	assert.Equal(t, 85.50, summary.Balance)
	assert.Equal(t, 3, summary.Count)
}

func TestList_PassesPeriodFilter(t *testing.T) {
	repo := &fakeTransactionRepo{}
	svc := NewService(repo, nopLogger{})

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
	txType := string(domain.TransactionIncome)

	_, err := svc.List(context.Background(), &models.GetTransactionsRequest{
		Type:      &txType,
		StartDate: &start,
		EndDate:   &end,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TransactionIncome, repo.lastFilter.Type)
	assert.Equal(t, &start, repo.lastFilter.StartDate)
	assert.Equal(t, &end, repo.lastFilter.EndDate)
}

func TestList_RejectsUnknownType(t *testing.T) {
	svc := NewService(&fakeTransactionRepo{}, nopLogger{})

	badType := "transferencia"
	_, err := svc.List(context.Background(), &models.GetTransactionsRequest{Type: &badType})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_RejectsNonPositiveAmount(t *testing.T) {
	svc := NewService(&fakeTransactionRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateTransactionRequest{
		Type:        string(domain.TransactionExpense),
		Amount:      0,
		Description: "Compra de esmaltes",
		Date:        "2025-07-10",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

package finances

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mundoinsolito/manicura/internal/domain"
	transactionRepo "github.com/mundoinsolito/manicura/internal/infra/storage/transaction"
	"github.com/mundoinsolito/manicura/internal/service/finances/models"
)

// Service сервис кассовой книги
type Service struct {
	transactionRepo TransactionRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса кассовой книги
func NewService(transactionRepo TransactionRepository, logger Logger) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// Create записывает доход или расход
func (s *Service) Create(ctx context.Context, req *models.CreateTransactionRequest) (*models.TransactionResponse, error) {
	s.logger.Info("Create: creating transaction type=%s, amount=%.2f", req.Type, req.Amount)

	t, err := s.validateAndConvert(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.transactionRepo.Create(ctx, t)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created transaction id=%s", created.ID)
	return models.FromDomainTransaction(created), nil
}

// List получает записи кассовой книги с фильтрацией по типу и периоду
func (s *Service) List(ctx context.Context, req *models.GetTransactionsRequest) (*models.TransactionListResponse, error) {
	transactions, err := s.fetch(ctx, req, "List")
	if err != nil {
		return nil, err
	}

	s.logger.Info("List: successfully fetched %d transactions", len(transactions))
	return models.FromDomainTransactionList(transactions), nil
}

// Summary считает сводку за период: доходы, расходы и баланс
func (s *Service) Summary(ctx context.Context, req *models.GetTransactionsRequest) (*models.SummaryResponse, error) {
	transactions, err := s.fetch(ctx, req, "Summary")
	if err != nil {
		return nil, err
	}

	return models.SummaryFromDomain(transactions), nil
}

// Delete удаляет запись кассовой книги
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting transaction id=%s", id)

	if err := s.transactionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, transactionRepo.ErrTransactionNotFound) {
			s.logger.Warn("Delete: transaction id=%s not found", id)
			return ErrTransactionNotFound
		}
		s.logger.Error("Delete: repository error for transaction id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted transaction id=%s", id)
	return nil
}

func (s *Service) fetch(ctx context.Context, req *models.GetTransactionsRequest, op string) ([]*domain.Transaction, error) {
	filter := transactionRepo.Filter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if req.Type != nil {
		t := domain.TransactionType(*req.Type)
		if !t.Valid() {
			s.logger.Warn("%s: invalid type=%s", op, *req.Type)
			return nil, fmt.Errorf("%w: invalid transaction type", ErrInvalidInput)
		}
		filter.Type = t
	}

	transactions, err := s.transactionRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return transactions, nil
}

func (s *Service) validateAndConvert(req *models.CreateTransactionRequest) (*domain.Transaction, error) {
	t := domain.TransactionType(req.Type)
	if !t.Valid() {
		return nil, fmt.Errorf("%w: type must be %q or %q",
			ErrInvalidInput, domain.TransactionIncome, domain.TransactionExpense)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	converted, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: date must use format %s", ErrInvalidInput, domain.DateFormat)
	}

	return converted, nil
}

package models

import (
	"time"

	"github.com/mundoinsolito/manicura/internal/domain"
)

// Request модели

// CreateTransactionRequest запрос на запись дохода или расхода
type CreateTransactionRequest struct {
	Type        string  `json:"type"` // "income" | "expense"
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // "2025-07-15"
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateTransactionRequest) ToDomain() (*domain.Transaction, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &domain.Transaction{
		Type:        domain.TransactionType(r.Type),
		Amount:      r.Amount,
		Description: r.Description,
		Date:        date,
	}, nil
}

// GetTransactionsRequest запрос на выборку записей кассовой книги
type GetTransactionsRequest struct {
	Type      *string    `json:"type,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// Response модели

// TransactionResponse ответ с записью кассовой книги
type TransactionResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	AppointmentID *string   `json:"appointmentId,omitempty"`
	Date          string    `json:"date"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TransactionListResponse ответ со списком записей
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// SummaryResponse сводка за период: доходы, расходы и баланс
type SummaryResponse struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
	Count        int     `json:"count"`
}

// Методы конвертации

// FromDomainTransaction конвертирует domain модель в DTO
func FromDomainTransaction(t *domain.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}

	return &TransactionResponse{
		ID:            t.ID,
		Type:          string(t.Type),
		Amount:        t.Amount,
		Description:   t.Description,
		AppointmentID: t.AppointmentID,
		Date:          t.Date.Format(domain.DateFormat),
		CreatedAt:     t.CreatedAt,
	}
}

// FromDomainTransactionList конвертирует список domain моделей в DTO
func FromDomainTransactionList(transactions []*domain.Transaction) *TransactionListResponse {
	resp := &TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(transactions)),
	}
	for _, t := range transactions {
		resp.Transactions = append(resp.Transactions, *FromDomainTransaction(t))
	}
	return resp
}

// SummaryFromDomain считает сводку по списку записей
func SummaryFromDomain(transactions []*domain.Transaction) *SummaryResponse {
	summary := &SummaryResponse{Count: len(transactions)}
	for _, t := range transactions {
		switch t.Type {
		case domain.TransactionIncome:
			summary.TotalIncome += t.Amount
		case domain.TransactionExpense:
			summary.TotalExpense += t.Amount
		}
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense
	return summary
}

package domain

import "time"

// TransactionType distinguishes money coming in from money going out
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Valid returns true if the type is one of the known values
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction is a manual ledger entry. Payment confirmations on
// appointments record income transactions automatically.
type Transaction struct {
	ID            string
	Type          TransactionType
	Amount        float64
	Description   string
	AppointmentID *string
	Date          time.Time
	CreatedAt     time.Time
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashTransactionType is the direction of a cash book entry.
type CashTransactionType string

const (
	Income  CashTransactionType = "income"
	Expense CashTransactionType = "expense"
)

// IsValid reports whether the type is one of the known directions.
func (t CashTransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// CashTransaction is a single cash income or expense entry. It is
// independent of customers and feeds the cash-balance aggregate.
type CashTransaction struct {
	TransactionID string              `json:"id"`
	Type          CashTransactionType `json:"type"`
	Amount        decimal.Decimal     `json:"amount"`
	Description   string              `json:"description"`
	Date          time.Time           `json:"date"`
	Timestamps
}

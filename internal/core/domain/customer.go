package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer owns a debt/payment ledger and any number of receipts.
type Customer struct {
	CustomerID string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Notes      string `json:"notes"`
	Timestamps
	// Balance is Σdebt − Σpayment over the customer's ledger, computed at
	// read time. It is never stored.
	Balance decimal.Decimal `json:"balance"`
}

// CustomerTransactionType is the direction of a customer ledger entry.
type CustomerTransactionType string

const (
	Debt    CustomerTransactionType = "debt"
	Payment CustomerTransactionType = "payment"
)

// IsValid reports whether the type is one of the known directions.
func (t CustomerTransactionType) IsValid() bool {
	return t == Debt || t == Payment
}

// CustomerTransaction is a single debt or payment entry on a customer's ledger.
type CustomerTransaction struct {
	TransactionID string                  `json:"id"`
	CustomerID    string                  `json:"customerID"`
	Type          CustomerTransactionType `json:"type"`
	Amount        decimal.Decimal         `json:"amount"`
	Description   string                  `json:"description"`
	Date          time.Time               `json:"date"`
	CreatedAt     time.Time               `json:"createdAt"`
}

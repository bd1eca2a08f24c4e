package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the database shape of a ledger customer. Balance is filled by
// aggregate queries, not a column.
type Customer struct {
	CustomerID string          `db:"customer_id"`
	Name       string          `db:"name"`
	Phone      string          `db:"phone"`
	Notes      string          `db:"notes"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
	Balance    decimal.Decimal `db:"balance"`
}

// CustomerTransaction is the database shape of a debt/payment ledger entry.
type CustomerTransaction struct {
	TransactionID string          `db:"transaction_id"`
	CustomerID    string          `db:"customer_id"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	Date          time.Time       `db:"date"`
	CreatedAt     time.Time       `db:"created_at"`
}

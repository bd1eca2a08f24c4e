package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashTransaction is the database shape of a cash book entry.
type CashTransaction struct {
	TransactionID string          `db:"transaction_id"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	Date          time.Time       `db:"date"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

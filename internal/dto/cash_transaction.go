package dto

import (
	"time"

	"github.com/defterpro/defter_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCashTransactionRequest defines the payload for a new cash entry.
// Date is YYYY-MM-DD and defaults to today when omitted.
type CreateCashTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"omitempty,businessdate"`
}

// UpdateCashTransactionRequest defines the payload for updating a cash entry.
type UpdateCashTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required,businessdate"`
}

// ListCashTransactionsParams defines query parameters for the cash book.
// From and To are YYYY-MM-DD bounds on the business date.
type ListCashTransactionsParams struct {
	Type   string `form:"type" binding:"omitempty,oneof=income expense"`
	From   string `form:"from"`
	To     string `form:"to"`
	Limit  int    `form:"limit,default=100"`
	Offset int    `form:"offset,default=0"`
}

// CashTransactionResponse is the API shape of a cash entry. Dates are
// ISO-8601: the business date has no time component.
type CashTransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToCashTransactionResponse converts a domain entry to its API shape.
func ToCashTransactionResponse(t *domain.CashTransaction) CashTransactionResponse {
	return CashTransactionResponse{
		ID:          t.TransactionID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date.Format(domain.DateLayout),
		CreatedAt:   t.CreatedAt,
	}
}

// ToCashTransactionResponseSlice converts a slice of domain entries.
func ToCashTransactionResponseSlice(ts []domain.CashTransaction) []CashTransactionResponse {
	out := make([]CashTransactionResponse, len(ts))
	for i := range ts {
		out[i] = ToCashTransactionResponse(&ts[i])
	}
	return out
}

package dto

import (
	"time"

	"github.com/defterpro/defter_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the payload for a new customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Phone string `json:"phone" binding:"max=20"`
	Notes string `json:"notes"`
}

// UpdateCustomerRequest defines the payload for updating a customer.
// Pointers distinguish omitted fields from zero values.
type UpdateCustomerRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Phone *string `json:"phone" binding:"omitempty,max=20"`
	Notes *string `json:"notes"`
}

// CustomerResponse is the API shape of a customer, balance included.
type CustomerResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Notes     string          `json:"notes"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BalanceResponse carries a single computed customer balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// CreateCustomerTransactionRequest defines the payload for a debt/payment
// ledger entry. Date is YYYY-MM-DD and defaults to today when omitted.
type CreateCustomerTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=debt payment"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"omitempty,businessdate"`
}

// UpdateCustomerTransactionRequest defines the payload for updating a
// ledger entry.
type UpdateCustomerTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=debt payment"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"omitempty,businessdate"`
}

// CustomerTransactionResponse is the API shape of a ledger entry.
type CustomerTransactionResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToCustomerResponse converts a domain customer to its API shape.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.CustomerID,
		Name:      c.Name,
		Phone:     c.Phone,
		Notes:     c.Notes,
		Balance:   c.Balance,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCustomerResponseSlice converts a slice of domain customers.
func ToCustomerResponseSlice(cs []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(cs))
	for i := range cs {
		out[i] = ToCustomerResponse(&cs[i])
	}
	return out
}

// ToCustomerTransactionResponse converts a domain ledger entry.
func ToCustomerTransactionResponse(t *domain.CustomerTransaction) CustomerTransactionResponse {
	return CustomerTransactionResponse{
		ID:          t.TransactionID,
		CustomerID:  t.CustomerID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date.Format(domain.DateLayout),
		CreatedAt:   t.CreatedAt,
	}
}

// ToCustomerTransactionResponseSlice converts a slice of ledger entries.
func ToCustomerTransactionResponseSlice(ts []domain.CustomerTransaction) []CustomerTransactionResponse {
	out := make([]CustomerTransactionResponse, len(ts))
	for i := range ts {
		out[i] = ToCustomerTransactionResponse(&ts[i])
	}
	return out
}

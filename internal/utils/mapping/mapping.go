// Package mapping converts between database models and domain entities.
package mapping

import (
	"github.com/defterpro/defter_backend/internal/core/domain"
	"github.com/defterpro/defter_backend/internal/models"
)

func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Role),
		IsActive:     m.IsActive,
		LastLoginAt:  m.LastLoginAt,
		Timestamps:   domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         string(d.Role),
		IsActive:     d.IsActive,
		LastLoginAt:  d.LastLoginAt,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func ToDomainCashTransaction(m models.CashTransaction) domain.CashTransaction {
	return domain.CashTransaction{
		TransactionID: m.TransactionID,
		Type:          domain.CashTransactionType(m.Type),
		Amount:        m.Amount,
		Description:   m.Description,
		Date:          m.Date,
		Timestamps:    domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func ToModelCashTransaction(d domain.CashTransaction) models.CashTransaction {
	return models.CashTransaction{
		TransactionID: d.TransactionID,
		Type:          string(d.Type),
		Amount:        d.Amount,
		Description:   d.Description,
		Date:          d.Date,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
		Phone:      m.Phone,
		Notes:      m.Notes,
		Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		Balance:    m.Balance,
	}
}

func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID: d.CustomerID,
		Name:       d.Name,
		Phone:      d.Phone,
		Notes:      d.Notes,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func ToDomainCustomerTransaction(m models.CustomerTransaction) domain.CustomerTransaction {
	return domain.CustomerTransaction{
		TransactionID: m.TransactionID,
		CustomerID:    m.CustomerID,
		Type:          domain.CustomerTransactionType(m.Type),
		Amount:        m.Amount,
		Description:   m.Description,
		Date:          m.Date,
		CreatedAt:     m.CreatedAt,
	}
}

func ToModelCustomerTransaction(d domain.CustomerTransaction) models.CustomerTransaction {
	return models.CustomerTransaction{
		TransactionID: d.TransactionID,
		CustomerID:    d.CustomerID,
		Type:          string(d.Type),
		Amount:        d.Amount,
		Description:   d.Description,
		Date:          d.Date,
		CreatedAt:     d.CreatedAt,
	}
}

func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:  m.ProductID,
		Name:       m.Name,
		Unit:       m.Unit,
		UnitPrice:  m.UnitPrice,
		Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID: d.ProductID,
		Name:      d.Name,
		Unit:      d.Unit,
		UnitPrice: d.UnitPrice,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:    m.ReceiptID,
		CustomerID:   m.CustomerID,
		CustomerName: m.CustomerName,
		ReceiptNo:    m.ReceiptNo,
		TotalAmount:  m.TotalAmount,
		TaxRate:      m.TaxRate,
		TaxAmount:    m.TaxAmount,
		GrandTotal:   m.GrandTotal,
		Notes:        m.Notes,
		Date:         m.Date,
		CreatedAt:    m.CreatedAt,
	}
}

func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:   d.ReceiptID,
		CustomerID:  d.CustomerID,
		ReceiptNo:   d.ReceiptNo,
		TotalAmount: d.TotalAmount,
		TaxRate:     d.TaxRate,
		TaxAmount:   d.TaxAmount,
		GrandTotal:  d.GrandTotal,
		Notes:       d.Notes,
		Date:        d.Date,
		CreatedAt:   d.CreatedAt,
	}
}

func ToDomainReceiptItem(m models.ReceiptItem) domain.ReceiptItem {
	return domain.ReceiptItem{
		ReceiptItemID: m.ReceiptItemID,
		ReceiptID:     m.ReceiptID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		ProductUnit:   m.ProductUnit,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		TotalPrice:    m.TotalPrice,
	}
}

func ToModelReceiptItem(d domain.ReceiptItem) models.ReceiptItem {
	return models.ReceiptItem{
		ReceiptItemID: d.ReceiptItemID,
		ReceiptID:     d.ReceiptID,
		ProductID:     d.ProductID,
		Quantity:      d.Quantity,
		UnitPrice:     d.UnitPrice,
		TotalPrice:    d.TotalPrice,
	}
}

func ToDomainReceiptItemSlice(ms []models.ReceiptItem) []domain.ReceiptItem {
	out := make([]domain.ReceiptItem, len(ms))
	for i, m := range ms {
		out[i] = ToDomainReceiptItem(m)
	}
	return out
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the database shape of a sales receipt. CustomerName is joined
// in, not stored.
type Receipt struct {
	ReceiptID    string          `db:"receipt_id"`
	CustomerID   string          `db:"customer_id"`
	CustomerName string          `db:"customer_name"`
	ReceiptNo    string          `db:"receipt_no"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	TaxRate      decimal.Decimal `db:"tax_rate"`
	TaxAmount    decimal.Decimal `db:"tax_amount"`
	GrandTotal   decimal.Decimal `db:"grand_total"`
	Notes        string          `db:"notes"`
	Date         time.Time       `db:"date"`
	CreatedAt    time.Time       `db:"created_at"`
}

// ReceiptItem is the database shape of a receipt line. ProductName and
// ProductUnit are joined in for responses.
type ReceiptItem struct {
	ReceiptItemID string          `db:"receipt_item_id"`
	ReceiptID     string          `db:"receipt_id"`
	ProductID     string          `db:"product_id"`
	ProductName   string          `db:"product_name"`
	ProductUnit   string          `db:"product_unit"`
	Quantity      decimal.Decimal `db:"quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	TotalPrice    decimal.Decimal `db:"total_price"`
}

package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const receiptNoPrefix = "F"

// Receipt is a sales document. Creating one also posts a debt entry for the
// grand total to the customer's ledger; the two always exist together.
type Receipt struct {
	ReceiptID    string          `json:"id"`
	CustomerID   string          `json:"customerID"`
	CustomerName string          `json:"customerName,omitempty"`
	ReceiptNo    string          `json:"receiptNo"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	TaxAmount    decimal.Decimal `json:"taxAmount"`
	GrandTotal   decimal.Decimal `json:"grandTotal"`
	Notes        string          `json:"notes"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"createdAt"`
	Items        []ReceiptItem   `json:"items,omitempty"`
}

// ReceiptItem is one line of a receipt. UnitPrice is a snapshot taken at
// creation time and may diverge from the product's current price.
type ReceiptItem struct {
	ReceiptItemID string          `json:"id"`
	ReceiptID     string          `json:"receiptID"`
	ProductID     string          `json:"productID"`
	ProductName   string          `json:"productName,omitempty"`
	ProductUnit   string          `json:"productUnit,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

// FormatReceiptNo renders a receipt sequence number as its wire form,
// zero-padded to three digits ("F001", "F042", "F1234").
func FormatReceiptNo(n int) string {
	return fmt.Sprintf("%s%03d", receiptNoPrefix, n)
}

// ParseReceiptNo extracts the numeric sequence from a receipt number.
func ParseReceiptNo(no string) (int, error) {
	rest, ok := strings.CutPrefix(no, receiptNoPrefix)
	if !ok {
		return 0, fmt.Errorf("receipt number %q lacks %q prefix", no, receiptNoPrefix)
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("receipt number %q has non-numeric suffix: %w", no, err)
	}
	return n, nil
}

// ComputeReceiptTotals derives a receipt's monetary fields from its items
// and tax rate. Each line total is quantity × unit price rounded to 2dp,
// the subtotal is the sum of line totals, tax is subtotal × rate / 100, and
// the grand total is subtotal + tax. Line totals are written back into items.
func ComputeReceiptTotals(items []ReceiptItem, taxRate decimal.Decimal) (subtotal, taxAmount, grandTotal decimal.Decimal) {
	subtotal = decimal.Zero
	for i := range items {
		items[i].TotalPrice = items[i].Quantity.Mul(items[i].UnitPrice).Round(2)
		subtotal = subtotal.Add(items[i].TotalPrice)
	}
	taxAmount = subtotal.Mul(taxRate).Div(decimal.NewFromInt(100)).Round(2)
	grandTotal = subtotal.Add(taxAmount)
	return subtotal, taxAmount, grandTotal
}

// ReceiptDebtDescription is the ledger description for the debt entry a
// receipt posts to its customer.
func ReceiptDebtDescription(receiptNo, notes string) string {
	if notes == "" {
		notes = "Satış"
	}
	return fmt.Sprintf("Fiş #%s - %s", receiptNo, notes)
}

package domain

import "github.com/shopspring/decimal"

// Product is a price-catalog entry. There is no stock tracking; the unit
// price is only a default that receipt lines snapshot at creation time.
type Product struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Timestamps
}

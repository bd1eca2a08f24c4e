package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the database shape of a catalog entry.
type Product struct {
	ProductID string          `db:"product_id"`
	Name      string          `db:"name"`
	Unit      string          `db:"unit"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

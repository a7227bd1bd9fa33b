package model

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The data file doubles as the backup/export format, and historical backups
	// store prices as plain JSON numbers. Keep writing them that way.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a catalog entry. Products are never mutated in place: they are
// created, deleted by id, or replaced wholesale by a backup import.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	SKU      string          `json:"sku"`
	Category string          `json:"category"`
}

// CartLine is a product in the active sale. A cart holds at most one line per
// product id; Quantity is always >= 1 while the line exists.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal returns price * quantity for this line.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

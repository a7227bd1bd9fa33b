package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the immutable record of a finalized sale. Items and totals
// are a copy of the cart snapshot at finalize time, so later cart mutations
// cannot retroactively alter history.
type Transaction struct {
	ID       string          `json:"id"`
	Date     time.Time       `json:"date"`
	Items    []CartLine      `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

package model

import "github.com/shopspring/decimal"

// DiscountKind selects how Discount.Amount is interpreted.
// The wire values match the historical data format.
type DiscountKind string

const (
	DiscountAmount  DiscountKind = "amount"  // absolute currency amount
	DiscountPercent DiscountKind = "percent" // percentage of the subtotal
)

// Discount applies to the cart as a whole, never per line. It resets to the
// zero/absolute default whenever the cart is cleared or a sale finalizes.
type Discount struct {
	Amount decimal.Decimal `json:"amount"`
	Kind   DiscountKind    `json:"kind"`
}

// ZeroDiscount is the default: no discount, absolute kind.
func ZeroDiscount() Discount {
	return Discount{Amount: decimal.Zero, Kind: DiscountAmount}
}

package service

import (
	"github.com/shopspring/decimal"

	"github.com/hamaza7867/POS-NEW/internal/model"
)

// PricingResult holds the derived totals for a cart. It is recomputed on
// every read and never persisted standalone; display rounding to 2 decimal
// places happens only at presentation time.
type PricingResult struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	Total          decimal.Decimal `json:"total"`
}

var oneHundred = decimal.NewFromInt(100)

// ComputeTotals derives subtotal, discount, tax and total from the cart lines
// and the discount/tax configuration. Pure function of its inputs.
//
//	subtotal      = Σ price * quantity
//	afterDiscount = max(0, subtotal - discountAmount)
//	total         = afterDiscount * (1 + taxRatePercent/100)
//
// An excess discount is clamped, not reported as an error: the pre-tax total
// never goes negative. Negative discount amounts or tax rates are treated as
// caller error and clamped to zero so a negative total can never propagate.
func ComputeTotals(lines []model.CartLine, discount model.Discount, taxRatePercent decimal.Decimal) PricingResult {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal())
	}

	amount := discount.Amount
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	discountAmount := amount
	if discount.Kind == model.DiscountPercent {
		discountAmount = subtotal.Mul(amount).Div(oneHundred)
	}

	afterDiscount := subtotal.Sub(discountAmount)
	if afterDiscount.IsNegative() {
		afterDiscount = decimal.Zero
	}

	rate := taxRatePercent
	if rate.IsNegative() {
		rate = decimal.Zero
	}
	taxAmount := afterDiscount.Mul(rate).Div(oneHundred)

	return PricingResult{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxAmount:      taxAmount,
		Total:          afterDiscount.Add(taxAmount),
	}
}

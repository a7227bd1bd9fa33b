package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hamaza7867/POS-NEW/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type ChangeQuantityRequest struct {
	// Delta may be negative; a resulting quantity <= 0 removes the line.
	Delta int `json:"delta" validate:"required"`
}

type SetDiscountRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"min=0"`
	Kind   string          `json:"kind"   validate:"required,oneof=amount percent"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CartResponse struct {
	Lines         []model.CartLine `json:"lines"`
	TotalQuantity int              `json:"total_quantity"`
	Discount      model.Discount   `json:"discount"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	DiscountAmt   decimal.Decimal  `json:"discount_amount"`
	Tax           decimal.Decimal  `json:"tax"`
	Total         decimal.Decimal  `json:"total"`
	CheckoutState string           `json:"checkout_state"`
}

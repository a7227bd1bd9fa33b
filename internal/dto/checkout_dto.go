package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hamaza7867/POS-NEW/internal/model"
)

type CompleteRequest struct {
	Action string `json:"action" validate:"required,oneof=print share view"`
	// Phone is the optional WhatsApp destination for share.
	Phone string `json:"phone" validate:"omitempty,max=20"`
	// Email, when set, also delivers the receipt PDF by mail (fire-and-forget).
	Email string `json:"email" validate:"omitempty,email"`
}

type RequestPaymentResponse struct {
	State    string          `json:"state"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

type CompleteResponse struct {
	State       string            `json:"state"`
	Transaction model.Transaction `json:"transaction"`
	ReceiptHTML string            `json:"receipt_html,omitempty"`
	ShareURL    string            `json:"share_url,omitempty"`
	ShareText   string            `json:"share_text,omitempty"`
}

type CheckoutStateResponse struct {
	State string `json:"state"`
}

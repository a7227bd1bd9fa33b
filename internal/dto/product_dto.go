package dto

import "github.com/shopspring/decimal"

// ProductFilter is bound from the query string of GET /v1/products.
type ProductFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Sort     string `form:"sort" validate:"omitempty,oneof=default name-asc name-desc price-asc price-desc"`
}

type CreateProductRequest struct {
	Name     string          `json:"name"  validate:"required,min=1"`
	Price    decimal.Decimal `json:"price" validate:"min=0"`
	SKU      string          `json:"sku"`
	Category string          `json:"category"`
}

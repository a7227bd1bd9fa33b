package dto

import "github.com/shopspring/decimal"

// UpdateSettingsRequest replaces the shop settings wholesale.
type UpdateSettingsRequest struct {
	ShopName      string          `json:"shopName"      validate:"required,min=1"`
	ShopAddress   string          `json:"shopAddress"`
	ShopPhone     string          `json:"shopPhone"`
	ReceiptFooter string          `json:"receiptFooter"`
	TaxRate       decimal.Decimal `json:"taxRate"       validate:"min=0,max=100"`
	SalesLayout   string          `json:"salesLayout"   validate:"required,oneof=grid list"`
	SoundEnabled  bool            `json:"soundEnabled"`
}

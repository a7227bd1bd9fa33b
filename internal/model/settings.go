package model

import "github.com/shopspring/decimal"

// Settings is the shop configuration. It is loaded once at startup (merged
// over defaults for any missing field) and replaced wholesale on save or
// import. SalesLayout and SoundEnabled are display concerns the core ignores.
type Settings struct {
	ShopName      string          `json:"shopName"`
	ShopAddress   string          `json:"shopAddress"`
	ShopPhone     string          `json:"shopPhone"`
	ReceiptFooter string          `json:"receiptFooter"`
	TaxRate       decimal.Decimal `json:"taxRate"` // percent, 0-100
	SalesLayout   string          `json:"salesLayout"`
	SoundEnabled  bool            `json:"soundEnabled"`
}

// DefaultSettings returns the out-of-the-box shop configuration.
func DefaultSettings() Settings {
	return Settings{
		ShopName:      "My Shop",
		ShopAddress:   "123 Main Street",
		ShopPhone:     "+92 300 1234567",
		ReceiptFooter: "Thank you for your business!",
		TaxRate:       decimal.NewFromInt(10),
		SalesLayout:   "grid",
		SoundEnabled:  true,
	}
}

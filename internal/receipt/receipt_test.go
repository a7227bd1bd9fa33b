package receipt

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamaza7867/POS-NEW/internal/model"
)

func sampleReceipt() Receipt {
	settings := model.DefaultSettings()
	return Receipt{
		Lines: []model.CartLine{
			{
				Product:  model.Product{ID: "1", Name: "Green Tea", Price: decimal.NewFromInt(450)},
				Quantity: 2,
			},
			{
				Product:  model.Product{ID: "2", Name: "Milk 1L", Price: decimal.NewFromInt(220)},
				Quantity: 1,
			},
		},
		Subtotal: decimal.NewFromInt(1120),
		Discount: decimal.NewFromInt(120),
		Tax:      decimal.NewFromInt(100),
		Total:    decimal.NewFromInt(1100),
		Settings: settings,
		Date:     time.Date(2026, 3, 14, 15, 4, 0, 0, time.UTC),
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(sampleReceipt())
	require.NoError(t, err)

	assert.Contains(t, html, "My Shop")
	assert.Contains(t, html, "123 Main Street")
	assert.Contains(t, html, "Green Tea x2")
	assert.Contains(t, html, "PKR 900.00")
	assert.Contains(t, html, "-PKR 120.00")
	assert.Contains(t, html, "Tax (10%):")
	assert.Contains(t, html, "PKR 1100.00")
	assert.Contains(t, html, "Mar 14, 2026, 3:04 PM")
	assert.Contains(t, html, "Thank you for your business!")
	assert.Contains(t, html, "size: 80mm auto")
}

func TestRenderHTML_ZeroDiscountHidesRow(t *testing.T) {
	r := sampleReceipt()
	r.Discount = decimal.Zero

	html, err := RenderHTML(r)
	require.NoError(t, err)

	assert.NotContains(t, html, "Discount:")
}

func TestRenderText(t *testing.T) {
	text := RenderText(sampleReceipt())

	assert.Contains(t, text, "*My Shop*")
	assert.Contains(t, text, "_Mar 14, 2026, 3:04 PM_")
	assert.Contains(t, text, "Green Tea x2 - PKR 900.00")
	assert.Contains(t, text, "Milk 1L x1 - PKR 220.00")
	assert.Contains(t, text, "Discount: -PKR 120.00")
	assert.Contains(t, text, "Tax (10%): PKR 100.00")
	assert.Contains(t, text, "*TOTAL: PKR 1100.00*")
	assert.Contains(t, text, "Thank you for your business!")
}

func TestWhatsAppURL_WithPhone(t *testing.T) {
	u := WhatsAppURL(sampleReceipt(), "+92 300-1234567")

	assert.Contains(t, u, "https://wa.me/923001234567?text=")
	// The message text is query-escaped into the link.
	assert.Contains(t, u, "My+Shop")
}

func TestWhatsAppURL_WithoutPhone(t *testing.T) {
	u := WhatsAppURL(sampleReceipt(), "")

	assert.Contains(t, u, "https://wa.me/?text=")
}

func TestRenderPDF_WritesSpoolFile(t *testing.T) {
	spool := t.TempDir()

	path, err := RenderPDF(sampleReceipt(), "tx-123", spool)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(spool, "receipt_tx-123.pdf"), path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

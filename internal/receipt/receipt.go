// Package receipt renders a finalized (or pending) sale snapshot into the
// formats the completion actions need: an HTML document for view/print
// windows, a plain-text message plus wa.me link for sharing, and a
// thermal-style PDF for the print spool and email attachments.
package receipt

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hamaza7867/POS-NEW/internal/model"
)

// Currency is the single configured monetary unit, printed before amounts.
const Currency = "PKR"

// Receipt is everything a renderer needs: the snapshot taken when the
// completion action started, plus the shop settings at that moment.
type Receipt struct {
	Lines    []model.CartLine
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	Settings model.Settings
	Date     time.Time
}

var htmlTmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: 'Courier New', monospace;
      max-width: 280px;
      margin: 0 auto;
      padding: 10px;
      font-size: 12px;
      background: white;
    }
    .center { text-align: center; margin: 5px 0; }
    .bold { font-weight: bold; }
    .line { border-top: 1px dashed #000; margin: 8px 0; }
    .item-row { display: flex; justify-content: space-between; margin: 3px 0; gap: 5px; }
    .item-name { flex: 1; word-break: break-word; }
    .item-price { white-space: nowrap; }
    .total-row { display: flex; justify-content: space-between; margin: 5px 0; }
    .total-bold { font-weight: bold; font-size: 14px; }
    @media print {
      body { padding: 5px; }
      @page { margin: 0; size: 80mm auto; }
    }
  </style>
</head>
<body>
  <div class="center bold" style="font-size: 16px;">{{.ShopName}}</div>
  <div class="center">{{.ShopAddress}}</div>
  <div class="center">{{.ShopPhone}}</div>
  <div class="line"></div>
  <div class="center">{{.Date}}</div>
  <div class="line"></div>
  {{range .Items}}<div class="item-row">
    <span class="item-name">{{.Name}}</span>
    <span class="item-price">{{.Amount}}</span>
  </div>
  {{end}}<div class="line"></div>
  <div class="total-row">
    <span>Subtotal:</span>
    <span>{{.Subtotal}}</span>
  </div>
  {{if .Discount}}<div class="total-row">
    <span>Discount:</span>
    <span>-{{.Discount}}</span>
  </div>
  {{end}}<div class="total-row">
    <span>Tax ({{.TaxRate}}%):</span>
    <span>{{.Tax}}</span>
  </div>
  <div class="line"></div>
  <div class="total-row total-bold">
    <span>TOTAL:</span>
    <span>{{.Total}}</span>
  </div>
  <div class="line"></div>
  <div class="center">{{.Footer}}</div>
</body>
</html>
`))

type htmlItem struct {
	Name   string
	Amount string
}

type htmlData struct {
	ShopName    string
	ShopAddress string
	ShopPhone   string
	Date        string
	Items       []htmlItem
	Subtotal    string
	Discount    string // empty hides the row
	Tax         string
	TaxRate     string
	Total       string
	Footer      string
}

// money renders an amount rounded to 2 decimal places with the currency label.
func money(d decimal.Decimal) string {
	return Currency + " " + d.StringFixed(2)
}

// RenderHTML produces the 80mm-print-styled receipt document.
func RenderHTML(r Receipt) (string, error) {
	data := htmlData{
		ShopName:    r.Settings.ShopName,
		ShopAddress: r.Settings.ShopAddress,
		ShopPhone:   r.Settings.ShopPhone,
		Date:        r.Date.Format("Jan 2, 2006, 3:04 PM"),
		Subtotal:    money(r.Subtotal),
		Tax:         money(r.Tax),
		TaxRate:     r.Settings.TaxRate.String(),
		Total:       money(r.Total),
		Footer:      r.Settings.ReceiptFooter,
	}
	if r.Discount.IsPositive() {
		data.Discount = money(r.Discount)
	}
	for _, line := range r.Lines {
		data.Items = append(data.Items, htmlItem{
			Name:   fmt.Sprintf("%s x%d", line.Name, line.Quantity),
			Amount: money(line.LineTotal()),
		})
	}

	var sb strings.Builder
	if err := htmlTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("receipt: render html: %w", err)
	}
	return sb.String(), nil
}

// RenderText produces the plain-text share message (WhatsApp formatting).
func RenderText(r Receipt) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*%s*\n%s\n%s\n\n", r.Settings.ShopName, r.Settings.ShopAddress, r.Settings.ShopPhone)
	fmt.Fprintf(&sb, "_%s_\n\n", r.Date.Format("Jan 2, 2006, 3:04 PM"))
	for _, line := range r.Lines {
		fmt.Fprintf(&sb, "%s x%d - %s\n", line.Name, line.Quantity, money(line.LineTotal()))
	}
	sb.WriteString("\n───────────────\n")
	fmt.Fprintf(&sb, "Subtotal: %s\n", money(r.Subtotal))
	if r.Discount.IsPositive() {
		fmt.Fprintf(&sb, "Discount: -%s\n", money(r.Discount))
	}
	fmt.Fprintf(&sb, "Tax (%s%%): %s\n", r.Settings.TaxRate.String(), money(r.Tax))
	sb.WriteString("───────────────\n")
	fmt.Fprintf(&sb, "*TOTAL: %s*\n\n", money(r.Total))
	sb.WriteString(r.Settings.ReceiptFooter)
	return sb.String()
}

// WhatsAppURL builds the share link. With a phone number the chat opens
// directly with that customer; without one the user picks the recipient.
func WhatsAppURL(r Receipt, phone string) string {
	encoded := url.QueryEscape(RenderText(r))
	phone = strings.Map(func(c rune) rune {
		if c >= '0' && c <= '9' {
			return c
		}
		return -1
	}, phone)
	if phone != "" {
		return fmt.Sprintf("https://wa.me/%s?text=%s", phone, encoded)
	}
	return "https://wa.me/?text=" + encoded
}

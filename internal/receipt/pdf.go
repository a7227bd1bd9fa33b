package receipt

// pdf.go — thermal receipt-style PDF generation using go-pdf/fpdf.
// Used by the print action (spooled for the external print command) and as
// the attachment for emailed receipts. The output file is written to
// spoolPath/receipt_{txID}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

// RenderPDF writes the receipt as an A7-sized PDF and returns its path.
// spoolPath is created if needed.
func RenderPDF(r Receipt, txID, spoolPath string) (string, error) {
	if err := os.MkdirAll(spoolPath, 0o755); err != nil {
		return "", fmt.Errorf("receipt: create spool dir: %w", err)
	}
	filePath := filepath.Join(spoolPath, fmt.Sprintf("receipt_%s.pdf", txID))

	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, r.Settings.ShopName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, r.Settings.ShopAddress, "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 4, r.Settings.ShopPhone, "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 4, r.Date.Format("02/01/2006  15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Items ─────────────────────────────────────────────────────────────────
	col1 := contentW * 0.52 // product name
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // line total

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, line := range r.Lines {
		name := line.Name
		if len(name) > 22 {
			name = name[:21] + "…"
		}
		pdf.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", line.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, line.LineTotal().StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 5, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 5, r.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")

	if r.Discount.IsPositive() {
		pdf.CellFormat(col1+col2, 5, "Discount:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, "-"+r.Discount.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.CellFormat(col1+col2, 5, fmt.Sprintf("Tax (%s%%):", r.Settings.TaxRate.String()), "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 5, r.Tax.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, Currency+" "+r.Total.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, r.Settings.ReceiptFooter, "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("receipt: write pdf: %w", err)
	}
	return filePath, nil
}

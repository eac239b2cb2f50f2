package utils

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/yeremiapane/ranahan-restaurant/models"
)

// WriteReceiptPDF membuat struk A5 untuk satu catatan pembayaran
func WriteReceiptPDF(out io.Writer, p models.Payment) error {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(8, 8, 8)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Ranahan", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("Receipt #%d  Order #%d  Table %s", p.ID, p.OrderID, p.TableNo), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, p.PaidAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(50, 6, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(10, 6, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(0, 6, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, it := range p.Items {
		pdf.CellFormat(50, 5, it.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(10, 5, fmt.Sprintf("%d", it.Qty), "", 0, "R", false, 0, "")
		pdf.CellFormat(0, 5, FormatCurrencyTHB(it.Price*float64(it.Qty)), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	totals := []struct {
		label  string
		amount float64
	}{
		{"Subtotal", p.Subtotal},
		{"VAT", p.Vat},
		{"Total", p.Total},
	}
	for _, t := range totals {
		if t.label == "Total" {
			pdf.SetFont("Helvetica", "B", 10)
		}
		pdf.CellFormat(60, 6, t.label, "T", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, FormatCurrencyTHB(t.amount), "T", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.Ln(2)
	pdf.CellFormat(0, 5, "Paid by "+p.Method, "", 1, "C", false, 0, "")

	return pdf.Output(out)
}

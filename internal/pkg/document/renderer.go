// Package document renders payslip documents. The primary path produces a
// PDF; callers fall back to the plain-text rendition with identical content
// when PDF output fails, so the pay information is always deliverable.
package document

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PayslipData carries everything a rendered payslip shows. Dates are
// preformatted as YYYY-MM-DD.
type PayslipData struct {
	ID           int64
	EmployeeName string
	PeriodStart  string
	PeriodEnd    string
	Gross        decimal.Decimal
	Net          decimal.Decimal
}

// Lines is the canonical text content. Both renditions derive from it so
// the fallback never loses data.
func Lines(d PayslipData) []string {
	return []string{
		fmt.Sprintf("Payslip ID: %d", d.ID),
		fmt.Sprintf("Employee: %s", d.EmployeeName),
		fmt.Sprintf("Period: %s to %s", d.PeriodStart, d.PeriodEnd),
		fmt.Sprintf("Gross Pay: $%s", d.Gross.StringFixed(2)),
		fmt.Sprintf("Net Pay: $%s", d.Net.StringFixed(2)),
	}
}

func RenderPDF(d PayslipData) (Document, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	for _, line := range Lines(d) {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Document{}, fmt.Errorf("pdf output: %w", err)
	}

	return Document{
		Filename:    fmt.Sprintf("payslip_%d.pdf", d.ID),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}

func RenderText(d PayslipData) Document {
	var buf bytes.Buffer
	for _, line := range Lines(d) {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	return Document{
		Filename:    fmt.Sprintf("payslip_%d.txt", d.ID),
		ContentType: "application/octet-stream",
		Data:        buf.Bytes(),
	}
}

package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"scenicinn/models"
)

// ConfirmationPDF renders the document as a paginated A4 PDF, the binary
// counterpart of HTMLBody for attachment-based delivery.
func ConfirmationPDF(doc *models.ConfirmationDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; translate so the pound sign survives.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, tr(doc.VenueName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, tr(doc.Title), "B", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Booking Details", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, d := range doc.Details {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %s", d.Label, d.Value)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Menu Selections", "", 1, "L", false, 0, "")
	for i, person := range doc.People {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Person %d: %s", i+1, person.Name)), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, choice := range person.Choices {
			pdf.CellFormat(0, 6, tr(choice.String()), "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Package export encodes analysis results as downloadable documents.
// Nothing here touches the filesystem; callers get bytes back.
package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"cng-analyzer/internal/model"
	"cng-analyzer/internal/report"
)

// PDF file name and MIME type offered to downloaders.
const (
	PDFFileName = "cng_report.pdf"
	PDFMIME     = "application/pdf"
)

// PDF renders the one-page report: centred title, the three cost lines, then payback.
// Page content is left uncompressed so the text is searchable in the raw bytes.
func PDF(r model.Result) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetTitle(report.Title, false)
	pdf.SetCreator("cng-analyzer", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	pdf.CellFormat(190, 10, report.Title, "", 1, "C", false, 0, "")
	pdf.Ln(10)
	for _, line := range report.Lines(r) {
		pdf.CellFormat(190, 10, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

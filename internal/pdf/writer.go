package pdf

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Layout constants for the A4 guide document, in points.
const (
	pageMargin = 50
	titleSize  = 16
	bodySize   = 11
	lineHeight = 16
)

// Writer paginates raw text into an A4 PDF. No markdown or formatting
// semantics are interpreted, only line wrapping and page breaks.
type Writer struct{}

// NewWriter creates a new PDF Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteDocument renders the title and body text to path. Lines are wrapped
// to the printable width and a new page starts when the cursor would pass
// the bottom margin.
func (w *Writer) WriteDocument(path, title, content string) error {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()

	// Core fonts are cp1252 only; transliterate what we can and drop the rest.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", titleSize)
	doc.CellFormat(0, lineHeight, tr(title), "", 1, "L", false, 0, "")
	doc.Ln(lineHeight / 2)

	doc.SetFont("Helvetica", "", bodySize)
	pageWidth, _ := doc.GetPageSize()
	maxWidth := pageWidth - 2*pageMargin

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			doc.Ln(lineHeight)
			continue
		}
		for _, wrapped := range doc.SplitText(tr(line), maxWidth) {
			doc.CellFormat(0, lineHeight, wrapped, "", 1, "L", false, 0, "")
		}
	}

	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

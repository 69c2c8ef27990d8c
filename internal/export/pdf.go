package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// Renderer draws a report document to w.
type Renderer interface {
	Render(w io.Writer, doc ReportDocument) error
}

type rgb struct{ r, g, b int }

var (
	headerBand = rgb{39, 60, 80}
	tableHead  = rgb{43, 68, 87}
	altRow     = rgb{240, 249, 255}
	passText   = rgb{22, 163, 74}
	failText   = rgb{220, 38, 38}
	black      = rgb{0, 0, 0}
	white      = rgb{255, 255, 255}
)

const (
	pageMargin  = 14.0
	bandHeight  = 40.0
	tableTop    = 60.0
	lineHeight  = 5.0
	cellPadding = 1.5
)

var columnWidths = [4]float64{20, 0, 20, 30}

// PDFRenderer renders A4 portrait reports with a header band, a summary
// line and a paginated table whose header repeats on every page.
type PDFRenderer struct {
	// CreatedAt pins the document metadata date. Zero means now.
	CreatedAt time.Time
}

func (p PDFRenderer) Render(w io.Writer, doc ReportDocument) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("wcagcheck", true)
	created := p.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	pdf.SetCreationDate(created)

	// Core fonts are cp1252; Dutch text needs the translation.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, pageH := pdf.GetPageSize()

	widths := columnWidths
	widths[1] = pageW - 2*pageMargin - widths[0] - widths[2] - widths[3]

	pdf.AddPage()
	drawTitleBlock(pdf, tr, doc, pageW)

	pdf.SetTextColor(black.r, black.g, black.b)
	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(pageMargin, 50, tr(doc.Summary))

	pdf.SetY(tableTop)
	drawTableHead(pdf, tr, doc.Columns, widths)

	pdf.SetFont("Helvetica", "", 10)
	for i, row := range doc.Rows {
		lines := pdf.SplitText(tr(row.Title), widths[1]-2*cellPadding)
		if len(lines) == 0 {
			lines = []string{""}
		}
		h := float64(len(lines))*lineHeight + 2*cellPadding

		if pdf.GetY()+h > pageH-pageMargin {
			pdf.AddPage()
			pdf.SetY(pageMargin)
			drawTableHead(pdf, tr, doc.Columns, widths)
			pdf.SetFont("Helvetica", "", 10)
		}

		x, y := pageMargin, pdf.GetY()
		if i%2 == 1 {
			pdf.SetFillColor(altRow.r, altRow.g, altRow.b)
			pdf.Rect(x, y, widths[0]+widths[1]+widths[2]+widths[3], h, "F")
		}

		pdf.SetTextColor(black.r, black.g, black.b)
		cell(pdf, x, y, widths[0], tr(row.RefID))
		for j, line := range lines {
			cell(pdf, x+widths[0], y+float64(j)*lineHeight, widths[1], line)
		}
		cell(pdf, x+widths[0]+widths[1], y, widths[2], string(row.Level))

		c := failText
		if row.Completed {
			c = passText
		}
		pdf.SetTextColor(c.r, c.g, c.b)
		cell(pdf, x+widths[0]+widths[1]+widths[2], y, widths[3], tr(row.Status))

		pdf.SetY(y + h)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func drawTitleBlock(pdf *fpdf.Fpdf, tr func(string) string, doc ReportDocument, pageW float64) {
	pdf.SetFillColor(headerBand.r, headerBand.g, headerBand.b)
	pdf.Rect(0, 0, pageW, bandHeight, "F")

	pdf.SetTextColor(white.r, white.g, white.b)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(pageMargin, 20, tr(doc.Title))

	pdf.SetFont("Helvetica", "", 12)
	if doc.Website != "" {
		pdf.Text(pageMargin, 30, tr(doc.Website))
	}
	pdf.SetXY(pageW-pageMargin-60, 26)
	pdf.CellFormat(60, 6, doc.Date, "", 0, "R", false, 0, "")
}

func drawTableHead(pdf *fpdf.Fpdf, tr func(string) string, cols [4]string, widths [4]float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(tableHead.r, tableHead.g, tableHead.b)
	pdf.SetTextColor(white.r, white.g, white.b)
	pdf.SetX(pageMargin)
	for i, c := range cols {
		pdf.CellFormat(widths[i], lineHeight+2*cellPadding, tr(c), "", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func cell(pdf *fpdf.Fpdf, x, y, w float64, text string) {
	pdf.SetXY(x+cellPadding, y+cellPadding)
	pdf.CellFormat(w-2*cellPadding, lineHeight, text, "", 0, "L", false, 0, "")
}

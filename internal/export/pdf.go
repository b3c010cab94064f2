package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the document as a landscape A4 PDF, one section per
// table, with the letterhead on the first page and page numbers in the
// footer.
func WritePDF(w io.Writer, doc Document) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	for _, line := range doc.Letterhead {
		pdf.CellFormat(0, 7, line, "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, doc.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated "+doc.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	for _, table := range doc.Tables {
		if len(table.Header) == 0 {
			continue
		}

		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, table.Name, "", 1, "L", false, 0, "")

		widths := columnWidths(table, usable)

		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range table.Header {
			pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 8)
		for _, row := range table.Rows {
			for i, v := range row {
				align := "R"
				if i < 2 {
					align = "L"
				}
				pdf.CellFormat(widths[i], 6, v, "1", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// columnWidths gives the first two label columns double the share of the
// numeric ones.
func columnWidths(table Table, usable float64) []float64 {
	cols := len(table.Header)
	widths := make([]float64, cols)
	labelCols := 2
	if cols < 2 {
		labelCols = cols
	}
	shares := float64(cols-labelCols) + float64(labelCols)*2
	unit := usable / shares
	for i := range widths {
		if i < labelCols {
			widths[i] = unit * 2
		} else {
			widths[i] = unit
		}
	}
	return widths
}

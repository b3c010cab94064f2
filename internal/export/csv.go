package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// utf8BOM keeps spreadsheet applications from misreading the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV renders the document as a single CSV file. Tables are
// separated by a blank line and preceded by their name when the document
// has more than one.
func WriteCSV(w io.Writer, doc Document) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	for _, line := range doc.Letterhead {
		if err := cw.Write([]string{line}); err != nil {
			return fmt.Errorf("failed to write letterhead: %w", err)
		}
	}
	if err := cw.Write([]string{doc.Title}); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}
	if err := cw.Write([]string{"Generated " + doc.GeneratedAt.Format("2006-01-02 15:04")}); err != nil {
		return fmt.Errorf("failed to write generation time: %w", err)
	}

	for _, table := range doc.Tables {
		if err := cw.Write([]string{}); err != nil {
			return fmt.Errorf("failed to write separator: %w", err)
		}
		if len(doc.Tables) > 1 {
			if err := cw.Write([]string{table.Name}); err != nil {
				return fmt.Errorf("failed to write table name: %w", err)
			}
		}
		if err := cw.Write(table.Header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		for _, row := range table.Rows {
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX renders the document as a workbook with one sheet per table.
func WriteXLSX(w io.Writer, doc Document) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, table := range doc.Tables {
		sheet := table.Name
		if i == 0 {
			// The default sheet is renamed rather than replaced.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", sheet, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to add sheet %q: %w", sheet, err)
			}
		}

		rowNo := 1
		for _, line := range doc.Letterhead {
			cell := fmt.Sprintf("A%d", rowNo)
			if err := f.SetCellValue(sheet, cell, line); err != nil {
				return fmt.Errorf("failed to write letterhead: %w", err)
			}
			rowNo++
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNo), doc.Title); err != nil {
			return fmt.Errorf("failed to write title: %w", err)
		}
		rowNo++
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNo), "Generated "+doc.GeneratedAt.Format("2006-01-02 15:04")); err != nil {
			return fmt.Errorf("failed to write generation time: %w", err)
		}
		rowNo += 2

		headerCell, err := excelize.CoordinatesToCellName(1, rowNo)
		if err != nil {
			return fmt.Errorf("failed to locate header row: %w", err)
		}
		header := make([]interface{}, len(table.Header))
		for j, h := range table.Header {
			header[j] = h
		}
		if err := f.SetSheetRow(sheet, headerCell, &header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		rowNo++

		for _, row := range table.Rows {
			cell, err := excelize.CoordinatesToCellName(1, rowNo)
			if err != nil {
				return fmt.Errorf("failed to locate row: %w", err)
			}
			values := make([]interface{}, len(row))
			for j, v := range row {
				values[j] = v
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
			rowNo++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

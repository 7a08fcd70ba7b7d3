package parser

import (
	"github.com/thedatashed/xlsxreader"
)

// CountRows streams the first sheet of the workbook at path and returns the
// number of data rows, using the same header and blank-row rules as
// ReadPreview. No row is retained.
func CountRows(path string) (int, error) {
	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		return 0, err
	}
	defer xl.Close()

	if len(xl.Sheets) == 0 {
		return 0, ErrNoSheets
	}

	headerRow, lastRow := 0, 0
	rowNum := 0
	var readErr error
	// drain the channel even after an error so the reader goroutine exits
	for row := range xl.ReadRows(xl.Sheets[0]) {
		if row.Error != nil {
			if readErr == nil {
				readErr = row.Error
			}
			continue
		}

		rowNum++
		if row.Index > 0 {
			rowNum = row.Index
		}
		if !hasValue(row.Cells) {
			continue
		}
		if headerRow == 0 {
			headerRow = rowNum
		}
		lastRow = rowNum
	}
	if readErr != nil {
		return 0, readErr
	}

	if headerRow == 0 {
		return 0, nil
	}
	return lastRow - headerRow, nil
}

func hasValue(cells []xlsxreader.Cell) bool {
	for _, cell := range cells {
		if cell.Value != "" {
			return true
		}
	}
	return false
}

// Package parser reads spreadsheet sheets into tables.
//
// A sheet's header row is its first row with a non-empty cell. Data rows run
// from the row after the header through the last row with a non-empty cell;
// blank rows in between are kept, trailing blank rows are not.
package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/rawinspect/pkg/rawinspect/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates a workbook without any worksheet.
var ErrNoSheets = errors.New("workbook has no sheets")

// FirstSheet returns the name of the first sheet in workbook order.
func FirstSheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrNoSheets
	}
	return sheets[0], nil
}

// ReadPreview reads the header and at most limit data rows of a sheet.
// Reading stops as soon as limit data rows are collected. Cells hold their
// stored values, typed by cell type and number format, not the display text.
func ReadPreview(f *excelize.File, sheetName string, limit int) (*models.Table, error) {
	header, data, err := scanPreview(f, sheetName, limit)
	if err != nil {
		return nil, err
	}
	return buildTable(header, data, newCellTyper(f, sheetName))
}

// rawRow is a sheet row of unformatted cell text.
type rawRow struct {
	// num is the 1-based row number; zero for blank rows.
	num   int
	cells []string
}

// scanPreview collects raw rows and closes the iterator before any cell
// lookups touch the worksheet.
func scanPreview(f *excelize.File, sheetName string, limit int) ([]string, []rawRow, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var header []string
	headerFound := false
	var data []rawRow
	// blank rows are only kept once a later non-empty row shows they are not trailing
	pendingBlank := 0
	rowNum := 0

	for len(data) < limit && rows.Next() {
		rowNum++
		cells, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, nil, fmt.Errorf("read row %d: %w", rowNum, err)
		}
		cells = trimTrailingEmpty(cells)

		if !headerFound {
			if len(cells) > 0 {
				header = cells
				headerFound = true
			}
			continue
		}

		if len(cells) == 0 {
			pendingBlank++
			continue
		}
		for ; pendingBlank > 0 && len(data) < limit; pendingBlank-- {
			data = append(data, rawRow{})
		}
		if len(data) < limit {
			data = append(data, rawRow{num: rowNum, cells: cells})
		}
	}
	if err := rows.Error(); err != nil {
		return nil, nil, err
	}

	return header, data, nil
}

// buildTable sizes the table to the widest of header and data rows.
func buildTable(header []string, data []rawRow, typer *cellTyper) (*models.Table, error) {
	width := len(header)
	for _, r := range data {
		if len(r.cells) > width {
			width = len(r.cells)
		}
	}

	table := &models.Table{
		Columns: NormalizeHeader(header, width),
		Rows:    make([][]interface{}, 0, len(data)),
	}
	for _, r := range data {
		row, err := typer.row(r.num, r.cells, width)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// cellTyper turns raw cell text into typed values using the cell type and
// the number format of the cell style.
type cellTyper struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

func newCellTyper(f *excelize.File, sheet string) *cellTyper {
	t := &cellTyper{
		f:          f,
		sheet:      sheet,
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		t.date1904 = *props.Date1904
	}
	return t
}

// row types the cells of sheet row rowNum, padded to width.
// Empty cells become nil.
func (t *cellTyper) row(rowNum int, cells []string, width int) ([]interface{}, error) {
	row := make([]interface{}, width)
	for colIdx := 0; colIdx < width && colIdx < len(cells); colIdx++ {
		if cells[colIdx] == "" {
			continue
		}
		v, err := t.value(colIdx+1, rowNum, cells[colIdx])
		if err != nil {
			return nil, err
		}
		row[colIdx] = v
	}
	return row, nil
}

// value returns bool for boolean cells, time.Time for numbers under a date
// format, text for string cells and parseValue otherwise.
func (t *cellTyper) value(col, rowNum int, raw string) (interface{}, error) {
	cell, err := excelize.CoordinatesToCellName(col, rowNum)
	if err != nil {
		return nil, err
	}
	cellType, err := t.f.GetCellType(t.sheet, cell)
	if err != nil {
		return nil, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError, excelize.CellTypeDate:
		return raw, nil
	}

	v := parseValue(raw)
	var serial float64
	switch n := v.(type) {
	case int64:
		serial = float64(n)
	case float64:
		serial = n
	default:
		return v, nil
	}

	isDate, err := t.isDate(cell)
	if err != nil || !isDate {
		return v, err
	}
	tm, err := excelize.ExcelDateToTime(serial, t.date1904)
	if err != nil {
		// out of the calendar range; keep the number
		return v, nil
	}
	return tm, nil
}

func (t *cellTyper) isDate(cell string) (bool, error) {
	styleID, err := t.f.GetCellStyle(t.sheet, cell)
	if err != nil {
		return false, err
	}
	if isDate, ok := t.dateStyles[styleID]; ok {
		return isDate, nil
	}

	style, err := t.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	isDate := isDateFormat(style.NumFmt, style.CustomNumFmt)
	t.dateStyles[styleID] = isDate
	return isDate, nil
}

// isDateFormat reports whether a built-in number format id or a custom
// format code renders a date or time.
func isDateFormat(numFmt int, custom *string) bool {
	if custom != nil {
		return isDateFormatCode(*custom)
	}
	switch {
	case numFmt >= 14 && numFmt <= 22,
		numFmt >= 27 && numFmt <= 36,
		numFmt >= 45 && numFmt <= 47,
		numFmt >= 50 && numFmt <= 58:
		return true
	}
	return false
}

// isDateFormatCode looks for date tokens outside quoted text, brackets and
// escaped characters.
func isDateFormatCode(code string) bool {
	inQuote := false
	inBracket := false
	skip := false
	for _, r := range code {
		switch {
		case skip:
			skip = false
		case inQuote:
			inQuote = r != '"'
		case inBracket:
			inBracket = r != ']'
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		case r == '\\', r == '_', r == '*':
			skip = true
		default:
			switch r {
			case 'y', 'Y', 'm', 'M', 'd', 'D', 'h', 'H', 's', 'S':
				return true
			}
		}
	}
	return false
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// trimTrailingEmpty drops empty cells from the end of a row.
func trimTrailingEmpty(cells []string) []string {
	end := len(cells)
	for end > 0 && cells[end-1] == "" {
		end--
	}
	return cells[:end]
}

// Package models defines data structures for spreadsheet inspection.
package models

// Table represents the header and data rows read from a sheet.
type Table struct {
	// Columns holds the normalized column names in sheet order.
	Columns []string `json:"columns"`
	// Rows holds data rows. Each row has len(Columns) values; missing cells are nil.
	Rows [][]interface{} `json:"rows"`
}

// Head returns a table sharing the columns of t with at most n rows.
func (t *Table) Head(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	return &Table{
		Columns: t.Columns,
		Rows:    t.Rows[:n],
	}
}

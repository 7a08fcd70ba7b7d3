package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// saveWorkbook writes rows keyed by 1-based row number into the first sheet
// of a new workbook and returns its path.
func saveWorkbook(t *testing.T, rows map[int][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for rowNum, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		require.NoError(t, err)
		values := values
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &values))
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestCellTyperRow(t *testing.T) {
	f := openWorkbook(t, saveWorkbook(t, map[int][]interface{}{
		1: {"Header1", nil, 100, 200.5, true},
	}))

	row, err := newCellTyper(f, "Sheet1").row(1, []string{"Header1", "", "100", "200.5", "1"}, 6)
	require.NoError(t, err)

	require.Len(t, row, 6)
	if row[0] != "Header1" {
		t.Errorf("Expected 'Header1', got %v", row[0])
	}
	if row[1] != nil {
		t.Errorf("Expected nil for empty cell, got %v", row[1])
	}
	if row[2] != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", row[2], row[2])
	}
	if row[3] != 200.5 {
		t.Errorf("Expected 200.5, got %v", row[3])
	}
	if row[4] != true {
		t.Errorf("Expected true, got %v (type: %T)", row[4], row[4])
	}
	if row[5] != nil {
		t.Errorf("Expected nil padding, got %v", row[5])
	}
}

func TestIsDateFormat(t *testing.T) {
	custom := func(s string) *string { return &s }

	tests := []struct {
		numFmt   int
		custom   *string
		expected bool
	}{
		{0, nil, false},
		{3, nil, false},
		{9, nil, false},
		{14, nil, true},
		{22, nil, true},
		{31, nil, true},
		{46, nil, true},
		{49, nil, false},
		{0, custom("yyyy-mm-dd"), true},
		{0, custom("h:mm AM/PM"), true},
		{0, custom(";;;"), false},
		{0, custom(`#,##0 "days"`), false},
		{0, custom("[Red]0.00"), false},
		{0, custom(`0\d`), false},
		{0, custom("General"), false},
	}

	for _, tt := range tests {
		result := isDateFormat(tt.numFmt, tt.custom)
		if result != tt.expected {
			code := ""
			if tt.custom != nil {
				code = *tt.custom
			}
			t.Errorf("isDateFormat(%d, %q) = %v, expected %v", tt.numFmt, code, result, tt.expected)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestTrimTrailingEmpty(t *testing.T) {
	require.Equal(t, []string{"a", "", "b"}, trimTrailingEmpty([]string{"a", "", "b", "", ""}))
	require.Empty(t, trimTrailingEmpty([]string{"", ""}))
	require.Empty(t, trimTrailingEmpty(nil))
}

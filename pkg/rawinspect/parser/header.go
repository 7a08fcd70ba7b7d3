package parser

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// NormalizeHeader turns raw header cells into unique column names.
// The result has exactly width entries. Names are NFC-normalized, an empty
// name at position i becomes "Unnamed: i", and repeats get ".1", ".2", ...
// suffixes in order of appearance.
func NormalizeHeader(cells []string, width int) []string {
	names := make([]string, width)
	used := make(map[string]bool, width)
	repeats := make(map[string]int, width)

	for colIdx := 0; colIdx < width; colIdx++ {
		name := ""
		if colIdx < len(cells) {
			name = norm.NFC.String(cells[colIdx])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", colIdx)
		}

		candidate := name
		for used[candidate] {
			repeats[name]++
			candidate = fmt.Sprintf("%s.%d", name, repeats[name])
		}
		used[candidate] = true
		names[colIdx] = candidate
	}

	return names
}

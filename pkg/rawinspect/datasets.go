// Package rawinspect prints a structural summary of the raw_data spreadsheets.
package rawinspect

import (
	"path/filepath"
)

// BaseDir is the directory the datasets are read from.
const BaseDir = "raw_data"

const (
	// PreviewRows is the number of data rows read to discover a sheet's structure.
	PreviewRows = 5
	// SampleRows is the number of preview rows printed as a sample.
	SampleRows = 3
)

// Dataset identifies one spreadsheet by file name.
type Dataset string

// Datasets lists the inspected spreadsheets in processing order.
var Datasets = []Dataset{
	"artists.xlsx",
	"logistics.xlsx",
	"order.xlsx",
	"users.xlsx",
}

// Path joins the dataset file name onto dir.
func (d Dataset) Path(dir string) string {
	return filepath.Join(dir, string(d))
}

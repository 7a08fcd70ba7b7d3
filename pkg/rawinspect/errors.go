package rawinspect

import (
	"fmt"

	"github.com/ukaji3/rawinspect/pkg/rawinspect/parser"
)

// ErrNoSheets indicates the workbook contains no worksheet.
var ErrNoSheets = parser.ErrNoSheets

// Stage names the step of a dataset inspection that failed.
type Stage string

const (
	// StagePreview reads the header and the first rows.
	StagePreview Stage = "preview"
	// StageFull reads every row to count them.
	StageFull Stage = "full"
	// StageRender formats the sample table.
	StageRender Stage = "render"
)

// LoadError represents a failure while loading or rendering a dataset.
type LoadError struct {
	Path  string
	Stage Stage
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path string, stage Stage, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}

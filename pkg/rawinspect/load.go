package rawinspect

import (
	"github.com/ukaji3/rawinspect/pkg/rawinspect/models"
	"github.com/ukaji3/rawinspect/pkg/rawinspect/parser"
	"github.com/xuri/excelize/v2"
)

// LoadPreview reads the header and up to PreviewRows data rows from the
// first sheet of the workbook at path.
func LoadPreview(path string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, StagePreview, err)
	}
	defer f.Close()

	sheetName, err := parser.FirstSheet(f)
	if err != nil {
		return nil, NewLoadError(path, StagePreview, err)
	}

	table, err := parser.ReadPreview(f, sheetName, PreviewRows)
	if err != nil {
		return nil, NewLoadError(path, StagePreview, err)
	}
	return table, nil
}

// CountRows returns the number of data rows in the first sheet of the
// workbook at path.
func CountRows(path string) (int, error) {
	count, err := parser.CountRows(path)
	if err != nil {
		return 0, NewLoadError(path, StageFull, err)
	}
	return count, nil
}

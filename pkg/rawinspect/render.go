package rawinspect

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/ukaji3/rawinspect/pkg/rawinspect/models"
)

const (
	missingValue   = "NaN"
	datetimeLayout = "2006-01-02 15:04:05"
)

// renderSample formats t as a borderless text table with a leading row index.
func renderSample(t *models.Table) string {
	if len(t.Rows) == 0 {
		return fmt.Sprintf("Empty DataFrame\nColumns: [%s]\nIndex: []", strings.Join(t.Columns, ", "))
	}

	tw := table.NewWriter()
	tw.SetStyle(sampleStyle())

	header := make(table.Row, 0, len(t.Columns)+1)
	header = append(header, "")
	for _, name := range t.Columns {
		header = append(header, name)
	}
	tw.AppendHeader(header)

	for rowIdx, values := range t.Rows {
		row := make(table.Row, 0, len(t.Columns)+1)
		row = append(row, strconv.Itoa(rowIdx))
		for colIdx := range t.Columns {
			var v interface{}
			if colIdx < len(values) {
				v = values[colIdx]
			}
			row = append(row, formatValue(v))
		}
		tw.AppendRow(row)
	}

	columnConfigs := make([]table.ColumnConfig, 0, len(header))
	for i := range header {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignRight,
			AlignHeader: text.AlignRight,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func sampleStyle() table.Style {
	style := table.StyleDefault
	style.Name = "StyleSample"
	style.Options = table.OptionsNoBordersAndSeparators
	// column names are printed as they appear in the sheet
	style.Format.Header = text.FormatDefault
	return style
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return missingValue
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "True"
		}
		return "False"
	case time.Time:
		return val.Format(datetimeLayout)
	case string:
		return strings.ReplaceAll(val, "\n", `\n`)
	default:
		return fmt.Sprint(val)
	}
}

package loader

import (
	"fmt"
	"strconv"

	"inflammation/defs"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX loads a table from the first sheet of an Excel workbook, one
// patient per sheet row. The same rules as CSV apply: no header row, fully
// numeric, rectangular.
func LoadXLSX(filename string) (defs.Table, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", filename, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", filename, err)
	}

	t := make(defs.Table, len(rows))
	for i, cells := range rows {
		if i > 0 && len(cells) != len(t[0]) {
			return nil, fmt.Errorf("%w: rows have unequal lengths", defs.ErrFormat)
		}
		row := make([]float64, len(cells))
		for j, cell := range cells {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: non-numeric cell %q", defs.ErrFormat, cell)
			}
			row[j] = v
		}
		t[i] = row
	}
	return t, nil
}

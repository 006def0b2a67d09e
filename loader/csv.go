// Package loader reads and writes inflammation tables in their supported
// encodings: headerless numeric CSV, JSON records with an observations
// array, and the first sheet of an XLSX workbook.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"inflammation/defs"
)

// LoadCSV loads a table from a comma-delimited file with one patient per
// line and no header row. The file must be rectangular and fully numeric.
func LoadCSV(filename string) (defs.Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", filename, err)
	}
	defer file.Close()

	t, err := LoadCSVFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("unable to load %s: %w", filename, err)
	}
	return t, nil
}

// LoadCSVFromReader loads a CSV table from r.
func LoadCSVFromReader(r io.Reader) (defs.Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	var t defs.Table
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// The csv reader enforces a fixed field count itself.
			return nil, fmt.Errorf("%w: %v", defs.ErrFormat, err)
		}

		row := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: non-numeric field %q", defs.ErrFormat, field)
			}
			row[i] = v
		}
		t = append(t, row)
	}
	return t, nil
}

// WriteCSV writes a table in the format LoadCSV accepts.
func WriteCSV(filename string, t defs.Table) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", filename, err)
	}
	defer file.Close()

	if err := WriteCSVTo(file, t); err != nil {
		return fmt.Errorf("unable to write %s: %w", filename, err)
	}
	return nil
}

// WriteCSVTo writes a table as CSV to w.
func WriteCSVTo(w io.Writer, t defs.Table) error {
	writer := csv.NewWriter(w)
	record := make([]string, 0)
	for _, row := range t {
		record = record[:0]
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

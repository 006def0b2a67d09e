package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"inflammation/defs"
)

// LoadJSON loads a table from a JSON file holding an array of objects, each
// with an observations array of numbers. One object becomes one patient row.
// Rows need not share a length.
func LoadJSON(filename string) (defs.Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", filename, err)
	}
	defer file.Close()

	t, err := LoadJSONFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("unable to load %s: %w", filename, err)
	}
	return t, nil
}

// LoadJSONFromReader loads a JSON table from r.
func LoadJSONFromReader(r io.Reader) (defs.Table, error) {
	var records []defs.PatientRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", defs.ErrFormat, err)
	}

	t := make(defs.Table, len(records))
	for i, rec := range records {
		if rec.Observations == nil {
			return nil, fmt.Errorf("%w: entry %d has no observations", defs.ErrFormat, i)
		}
		t[i] = rec.Observations
	}
	return t, nil
}

// WriteJSON writes a table in the format LoadJSON accepts.
func WriteJSON(filename string, t defs.Table) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", filename, err)
	}
	defer file.Close()

	records := make([]defs.PatientRecord, len(t))
	for i, row := range t {
		records[i] = defs.PatientRecord{Observations: row}
	}
	if err := json.NewEncoder(file).Encode(records); err != nil {
		return fmt.Errorf("unable to write %s: %w", filename, err)
	}
	return nil
}

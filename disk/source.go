// Package disk provides dataset sources backed by files in a directory.
package disk

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"inflammation/defs"
	"inflammation/loader"

	"go.uber.org/zap"
)

// Source loads every file in Dir matching Pattern as one dataset. Format
// selects the decoder: "csv" (default) or "json". An empty Pattern falls
// back to the conventional inflammation* pattern for the format.
type Source struct {
	Dir     string
	Format  string
	Pattern string

	Logger *zap.Logger
}

func (s *Source) LoadAll(ctx context.Context) ([]defs.Table, error) {
	load, pattern := loader.LoadCSV, defs.CSVPattern
	if s.Format == "json" {
		load, pattern = loader.LoadJSON, defs.JSONPattern
	}
	if s.Pattern != "" {
		pattern = s.Pattern
	}

	matches, err := filepath.Glob(filepath.Join(s.Dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("unable to scan %s: %w", s.Dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no data files matching %s in %s", pattern, s.Dir)
	}
	sort.Strings(matches)

	tables := make([]defs.Table, len(matches))
	for i, name := range matches {
		s.Logger.Debug("loading dataset", zap.String("file", name))
		t, err := load(name)
		if err != nil {
			return nil, err
		}
		tables[i] = t
	}
	return tables, nil
}

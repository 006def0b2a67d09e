// Package analysis composes the per-dataset statistics into a cross-dataset
// variability result.
package analysis

import (
	"context"

	"inflammation/defs"
	"inflammation/stats"

	"go.uber.org/zap"
)

// Source enumerates and loads every dataset of a study. Implementations
// scan a directory, query a store, or serve fixtures in tests. All returned
// tables must cover the same number of days.
type Source interface {
	LoadAll(ctx context.Context) ([]defs.Table, error)
}

type Analyzer struct {
	Source Source

	Logger *zap.Logger
}

// Analyze loads every dataset from the source and returns the standard
// deviation, across datasets, of the daily mean inflammation.
func (an *Analyzer) Analyze(ctx context.Context) (defs.DailySeries, error) {
	tables, err := an.Source.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	an.Logger.Debug("loaded datasets", zap.Int("count", len(tables)))

	return stats.StandardDeviationByDay(tables)
}

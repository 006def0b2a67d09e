// Package stats implements the descriptive statistics over inflammation
// tables: the per-day reductions, patient normalisation, and the two
// standard deviation variants.
package stats

import (
	"fmt"

	"inflammation/defs"

	"github.com/montanaflynn/stats"
)

// DailyMean calculates the mean inflammation per day across all patients.
func DailyMean(t defs.Table) (defs.DailySeries, error) {
	return reduceColumns(t, stats.Mean)
}

// DailyMax calculates the maximum inflammation per day across all patients.
func DailyMax(t defs.Table) (defs.DailySeries, error) {
	return reduceColumns(t, stats.Max)
}

// DailyMin calculates the minimum inflammation per day across all patients.
func DailyMin(t defs.Table) (defs.DailySeries, error) {
	return reduceColumns(t, stats.Min)
}

func reduceColumns(t defs.Table, reduce func(stats.Float64Data) (float64, error)) (defs.DailySeries, error) {
	if err := checkRectangular(t); err != nil {
		return nil, err
	}

	days := make(defs.DailySeries, t.Cols())
	col := make([]float64, t.Rows())
	for day := range days {
		for i, row := range t {
			col[i] = row[day]
		}
		// Shape is already validated, the column is never empty.
		v, _ := reduce(col)
		days[day] = v
	}
	return days, nil
}

func checkRectangular(t defs.Table) error {
	if t.Rows() == 0 || t.Cols() == 0 {
		return fmt.Errorf("%w: empty table", defs.ErrShape)
	}
	if !t.Rectangular() {
		return fmt.Errorf("%w: rows have unequal lengths", defs.ErrShape)
	}
	return nil
}

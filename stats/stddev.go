package stats

import (
	"fmt"

	"inflammation/defs"

	"gonum.org/v1/gonum/stat"
)

// DeviationLabel keys the result of StandardDeviation.
const DeviationLabel = "standard deviation"

// StandardDeviation computes the per-day dispersion of a single table
// against its per-day mean: squared deviations summed over all patients and
// divided by the patient count.
//
// The returned series is the population variance per day, not its square
// root, despite the label. Downstream consumers rely on the current
// behaviour, so it is kept as is.
func StandardDeviation(t defs.Table) (map[string]defs.DailySeries, error) {
	means, err := DailyMean(t)
	if err != nil {
		return nil, err
	}

	devs := make(defs.DailySeries, t.Cols())
	for _, row := range t {
		for day, v := range row {
			d := v - means[day]
			devs[day] += d * d
		}
	}
	for day := range devs {
		devs[day] /= float64(t.Rows())
	}

	return map[string]defs.DailySeries{DeviationLabel: devs}, nil
}

// StandardDeviationByDay measures how much the datasets disagree with each
// other on each day: the per-day mean series is computed for every table
// independently, and the population standard deviation of the stacked means
// is taken per day. The tables may have different patient counts but must
// cover the same number of days.
func StandardDeviationByDay(tables []defs.Table) (defs.DailySeries, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: no datasets to compare", defs.ErrShape)
	}

	means := make([]defs.DailySeries, len(tables))
	for i, t := range tables {
		m, err := DailyMean(t)
		if err != nil {
			return nil, err
		}
		if i > 0 && len(m) != len(means[0]) {
			return nil, fmt.Errorf("%w: dataset %d covers %d days, expected %d",
				defs.ErrShape, i, len(m), len(means[0]))
		}
		means[i] = m
	}

	days := make(defs.DailySeries, len(means[0]))
	sample := make([]float64, len(means))
	for day := range days {
		for i, m := range means {
			sample[i] = m[day]
		}
		days[day] = stat.PopStdDev(sample, nil)
	}
	return days, nil
}

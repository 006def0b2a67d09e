package stats

import (
	"math"

	"inflammation/defs"
)

// Normalise rescales every patient's row into [0,1] by dividing it by the
// row's own maximum. NaN entries are ignored when finding the maximum, and
// any indeterminate result of the division (an all-zero or all-NaN row) is
// substituted with 0, so no NaN leaks into the output. Each row is
// normalised independently, so ragged tables are accepted.
//
// Any negative input value rejects the whole table with defs.ErrNegative
// before normalisation starts.
func Normalise(t defs.Table) (defs.Table, error) {
	for _, row := range t {
		for _, v := range row {
			if v < 0 {
				return nil, defs.ErrNegative
			}
		}
	}

	out := make(defs.Table, len(t))
	for i, row := range t {
		max := rowMax(row)
		norm := make([]float64, len(row))
		for j, v := range row {
			r := v / max
			if math.IsNaN(r) || r < 0 {
				r = 0
			}
			norm[j] = r
		}
		out[i] = norm
	}
	return out, nil
}

// rowMax returns the largest non-NaN value in the row, or NaN if there is
// none.
func rowMax(row []float64) float64 {
	max := math.NaN()
	for _, v := range row {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return max
}

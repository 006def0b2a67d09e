package defs

import "errors"

// Error kinds surfaced by the loaders and the stats routines. Callers branch
// on these with errors.Is; sites that detect a violation wrap them with
// positional context.
var (
	// ErrFormat covers malformed source data: a non-numeric field, ragged
	// CSV rows, a JSON entry without an observations key.
	ErrFormat = errors.New("malformed data")

	// ErrShape covers structurally unusable input: an empty table, ragged
	// rows where a rectangular table is required, or daily series of
	// mismatched lengths.
	ErrShape = errors.New("inconsistent data shape")

	// ErrNegative is returned by normalisation when any input value is
	// negative. The whole table is rejected before any work is done.
	ErrNegative = errors.New("negative values not permitted")
)

// SPDX-License-Identifier: MIT
// Package nanstat: sentinel error set.
// Only precondition violations are errors. Degenerate statistical input
// (all-NaN groups, zero denominators) always resolves to NaN instead.

package nanstat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nanstat/array"
)

var (
	// ErrNilArray aliases array.ErrNilArray so either sentinel matches.
	ErrNilArray = array.ErrNilArray

	// ErrDimensionMismatch aliases array.ErrDimensionMismatch (weights or mask
	// buffer shape differs from the data shape).
	ErrDimensionMismatch = array.ErrDimensionMismatch

	// ErrInvalidDims indicates a reduction axis other than DimsAll, DimsRows
	// or DimsCols. Order-statistic functions fall back to the whole array instead.
	ErrInvalidDims = errors.New("nanstat: invalid reduction dims")

	// ErrPercentileRange indicates a percentile outside [0, 100] (or NaN).
	ErrPercentileRange = errors.New("nanstat: percentile must be in [0, 100]")

	// ErrInvalidSpan indicates a moving-window span below 1.
	ErrInvalidSpan = errors.New("nanstat: window span must be >= 1")
)

// statErrorf wraps err with the public operation name.
func statErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// SPDX-License-Identifier: MIT
// Package hist: sentinel error set.
// Capacity mismatches are warnings, never errors; only precondition
// violations below fail a call.

package hist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEdges indicates an empty, non-finite, non-increasing or
	// unevenly spaced edge range.
	ErrInvalidEdges = errors.New("hist: invalid bin edges")

	// ErrDimensionMismatch indicates paired inputs of different lengths
	// (xs/ys, or samples/bin-index buffer).
	ErrDimensionMismatch = errors.New("hist: dimension mismatch")

	// ErrNilBuffer indicates a nil 2D count buffer.
	ErrNilBuffer = errors.New("hist: nil count buffer")

	// ErrNotMatrix indicates a 1D array passed where a 2D count grid is required.
	ErrNotMatrix = errors.New("hist: count buffer must be 2D")
)

// histErrorf wraps err with the operation name.
func histErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

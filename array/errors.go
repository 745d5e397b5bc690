// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
// All constructors and accessors return these sentinels (optionally wrapped
// with call-site context); callers match them with errors.Is.

package array

import "errors"

var (
	// ErrInvalidDimensions indicates a negative row/column count or a 1D/2D
	// layout that does not match the requested operation.
	ErrInvalidDimensions = errors.New("array: invalid dimensions")

	// ErrOutOfRange indicates that an index (row, column or flat) is outside valid bounds.
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands or
	// a backing slice whose length differs from rows*cols.
	ErrDimensionMismatch = errors.New("array: dimension mismatch")

	// ErrNilArray indicates that a nil *Dense was passed where data is required.
	ErrNilArray = errors.New("array: nil array")
)

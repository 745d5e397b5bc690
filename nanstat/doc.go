// SPDX-License-Identifier: MIT

// Package nanstat computes statistical reductions that ignore NaN.
//
// What & Why:
//
//	Scientific data routinely encodes missing values as NaN. Every reduction
//	here treats a NaN element as contributing exactly zero to each accumulator
//	it touches (sum, weighted sum, count), so callers can summarise raw arrays
//	without pre-filtering. Degenerate groups (all NaN, zero count, n<=1 for
//	variance) are not errors: they resolve to NaN (or the IEEE-754 result of a
//	division by zero) through the ordinary arithmetic path, so downstream code
//	tests math.IsNaN instead of handling errors.
//
// Surface:
//
//	Reductions:   NanSum, NanCount, NanMean, NanVar, NanStd, NanMinimum,
//	              NanMaximum, NanExtrema, NanRange (+ weighted mean/var/std)
//	Order stats:  NanPercentile, NanMedian, NanMAD, NanAAD, InCentralPercentile
//	Windows:      MovingMean, MovingMeanSlice
//	Masks:        Mask, MaskInto, MaskSlice
//
// Dims:
//
//	WithDims(DimsAll) (default) reduces the whole array to a scalar.
//	WithDims(DimsRows) reduces along the first axis (one value per column,
//	shape 1×c); WithDims(DimsCols) reduces along the second axis (one value
//	per row, shape r×1). WithDrop() removes the reduced axis. A 1D array
//	behaves as an n×1 column.
//
// Determinism:
//
//	Every group is accumulated in ascending row-major index order. Results
//	are float64 regardless of the element type.
package nanstat

// SPDX-License-Identifier: MIT
// Package: hist
//
// Purpose:
//   - In-place histogram accumulation over caller-owned buffers.
//   - Accumulate-not-overwrite: counts are only ever incremented.
//
// Determinism & Performance:
//   - Samples are visited in input order; the indexer is evaluated with
//     precomputed min/scale so the hot loop is one fused multiply-compare-ceil.
//   - Undersized buffers shrink the effective nbins before the loop, which keeps
//     the loop free of per-sample bounds checks beyond the validity test.

package hist

import (
	"github.com/katalvlaran/nanstat/array"
)

// Operation name constants for unified error wrapping and log fields.
const (
	opAccumulate          = "Accumulate"
	opAccumulateWithIndex = "AccumulateWithIndex"
	opAccumulate2D        = "Accumulate2D"
)

// Axis labels reported in truncation warnings.
const (
	axisX = "x"
	axisY = "y"
)

// effectiveBins clips nbins to capacity and warns when truncation happens.
func effectiveBins(o *Options, op, axis string, nbins, capacity int) int {
	if capacity < nbins {
		o.warnTruncated(op, axis, nbins, capacity)
		return capacity
	}

	return nbins
}

// Accumulate adds the histogram of samples over e into counts.
// Implementation:
//   - Stage 1: validate e.
//   - Stage 2: clip nbins to len(counts) (warn, continue).
//   - Stage 3: for each sample, counts[bin-1]++ when 0 < i <= nbins.
//
// Behavior highlights:
//   - counts is never reset; call twice to double every count.
//   - NaN, v <= e.Min, v > e.Max and bins beyond len(counts) are dropped.
//
// Errors:
//   - ErrInvalidEdges.
//
// Complexity:
//   - Time O(len(samples)), Space O(1).
func Accumulate[C, T array.Number](counts []C, samples []T, e Edges, opts ...Option) error {
	if err := e.validate(); err != nil {
		return histErrorf(opAccumulate, err)
	}
	o := gatherOptions(opts)
	nbins := effectiveBins(&o, opAccumulate, axisX, e.N, len(counts))

	min, scale := e.Min, e.Scale()
	var bin int
	var ok bool
	for _, v := range samples {
		if bin, ok = binOf(float64(v), min, scale, nbins); ok {
			counts[bin-1]++
		}
	}

	return nil
}

// AccumulateWithIndex behaves like Accumulate and additionally records, for
// every sample n, its 1-based bin in binIndex[n] (0 when it was not counted).
//
// Errors:
//   - ErrInvalidEdges; ErrDimensionMismatch when len(binIndex) != len(samples).
//
// Complexity:
//   - Time O(len(samples)), Space O(1).
func AccumulateWithIndex[C, T array.Number](counts []C, binIndex []int, samples []T, e Edges, opts ...Option) error {
	if err := e.validate(); err != nil {
		return histErrorf(opAccumulateWithIndex, err)
	}
	if len(binIndex) != len(samples) {
		return histErrorf(opAccumulateWithIndex, ErrDimensionMismatch)
	}
	o := gatherOptions(opts)
	nbins := effectiveBins(&o, opAccumulateWithIndex, axisX, e.N, len(counts))

	min, scale := e.Min, e.Scale()
	var bin int
	var ok bool
	for n, v := range samples {
		bin, ok = binOf(float64(v), min, scale, nbins)
		if ok {
			counts[bin-1]++
		}
		binIndex[n] = bin // 0 when !ok
	}

	return nil
}

// Accumulate2D adds the joint histogram of (xs[n], ys[n]) into counts, where
// counts rows are y-bins and columns are x-bins.
// Implementation:
//   - Stage 1: validate both axes, buffer presence/layout and xs/ys lengths.
//   - Stage 2: clip each axis independently to the buffer shape (warn, continue).
//   - Stage 3: increment counts[row-1, col-1] when both axes are valid.
//
// Errors:
//   - ErrInvalidEdges, ErrNilBuffer, ErrNotMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(len(xs)), Space O(1).
func Accumulate2D[C, T array.Number](counts *array.Dense[C], xs, ys []T, g Grid, opts ...Option) error {
	if err := g.X.validate(); err != nil {
		return histErrorf(opAccumulate2D, err)
	}
	if err := g.Y.validate(); err != nil {
		return histErrorf(opAccumulate2D, err)
	}
	if counts == nil {
		return histErrorf(opAccumulate2D, ErrNilBuffer)
	}
	if counts.NDim() != 2 {
		return histErrorf(opAccumulate2D, ErrNotMatrix)
	}
	if len(xs) != len(ys) {
		return histErrorf(opAccumulate2D, ErrDimensionMismatch)
	}
	o := gatherOptions(opts)
	rows, cols := counts.Shape()
	nx := effectiveBins(&o, opAccumulate2D, axisX, g.X.N, cols)
	ny := effectiveBins(&o, opAccumulate2D, axisY, g.Y.N, rows)

	data := counts.Data()
	xmin, xscale := g.X.Min, g.X.Scale()
	ymin, yscale := g.Y.Min, g.Y.Scale()
	var row, col int
	var okx, oky bool
	for n := range xs {
		col, okx = binOf(float64(xs[n]), xmin, xscale, nx)
		row, oky = binOf(float64(ys[n]), ymin, yscale, ny)
		if okx && oky {
			data[(row-1)*cols+(col-1)]++
		}
	}

	return nil
}

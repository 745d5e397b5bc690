// SPDX-License-Identifier: MIT
// Package: hist
//
// Purpose:
//   - Allocating conveniences over the in-place accumulators. Each wrapper
//     builds a zero buffer of the exact size and delegates, so behaviour is
//     identical to calling the in-place form on a fresh buffer.

package hist

import "github.com/katalvlaran/nanstat/array"

// Counts returns the int histogram of samples over e (length e.N).
func Counts[T array.Number](samples []T, e Edges, opts ...Option) ([]int, error) {
	return CountsAs[int](samples, e, opts...)
}

// CountsAs is Counts with a caller-chosen count element type (e.g. uint32, float64).
func CountsAs[C, T array.Number](samples []T, e Edges, opts ...Option) ([]C, error) {
	if err := e.validate(); err != nil {
		return nil, histErrorf(opAccumulate, err)
	}
	counts := make([]C, e.N)
	if err := Accumulate(counts, samples, e, opts...); err != nil {
		return nil, err
	}

	return counts, nil
}

// CountsRange is sugar for Counts(samples, Edges{min, max, n}).
func CountsRange[T array.Number](samples []T, min, max float64, n int, opts ...Option) ([]int, error) {
	e, err := NewEdges(min, max, n)
	if err != nil {
		return nil, err
	}

	return Counts(samples, e, opts...)
}

// CountsEdges accepts an explicit evenly spaced edge slice of length nbins+1.
func CountsEdges[T array.Number](samples []T, edges []float64, opts ...Option) ([]int, error) {
	e, err := EdgesFrom(edges)
	if err != nil {
		return nil, err
	}

	return Counts(samples, e, opts...)
}

// CountsWithIndex returns the histogram and the per-sample 1-based bin index
// (0 for samples that were not counted).
func CountsWithIndex[T array.Number](samples []T, e Edges, opts ...Option) ([]int, []int, error) {
	if err := e.validate(); err != nil {
		return nil, nil, histErrorf(opAccumulateWithIndex, err)
	}
	counts := make([]int, e.N)
	binIndex := make([]int, len(samples))
	if err := AccumulateWithIndex(counts, binIndex, samples, e, opts...); err != nil {
		return nil, nil, err
	}

	return counts, binIndex, nil
}

// Counts2D returns the g.Y.N × g.X.N joint histogram of (xs, ys).
func Counts2D[T array.Number](xs, ys []T, g Grid, opts ...Option) (*array.Dense[int], error) {
	if _, err := NewGrid(g.X, g.Y); err != nil {
		return nil, histErrorf(opAccumulate2D, err)
	}
	counts, err := array.NewDense[int](g.Y.N, g.X.N)
	if err != nil {
		return nil, histErrorf(opAccumulate2D, err)
	}
	if err = Accumulate2D(counts, xs, ys, g, opts...); err != nil {
		return nil, err
	}

	return counts, nil
}

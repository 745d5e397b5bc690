// SPDX-License-Identifier: MIT

// Package hist - regular bin edges & the affine bin indexer.
//
// Purpose:
//   - Represent an evenly spaced edge range by (Min, Max, N) so the bin of a
//     sample is an O(1) affine computation.
//   - Keep the indexer pure: no allocation, no logging, no error path; NaN and
//     out-of-range samples simply report ok=false.

package hist

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// edgeSpacingTol is the relative tolerance on each step when validating
// explicit edge slices for even spacing.
const edgeSpacingTol = 1e-9

// Edges is an evenly spaced edge range: N equal bins spanning [Min, Max].
type Edges struct {
	Min float64 // lower global edge (excluded from every bin)
	Max float64 // upper global edge (included in bin N)
	N   int     // number of bins, >= 1
}

// NewEdges returns the range of n equal bins over [min, max].
// Errors: ErrInvalidEdges when n < 1, min/max are non-finite, or min >= max.
// Complexity: O(1).
func NewEdges(min, max float64, n int) (Edges, error) {
	e := Edges{Min: min, Max: max, N: n}
	if err := e.validate(); err != nil {
		return Edges{}, histErrorf("NewEdges", err)
	}

	return e, nil
}

// EdgesFrom converts an explicit edge slice (length nbins+1) into Edges.
// Implementation:
//   - Stage 1: require at least two finite, strictly increasing edges.
//   - Stage 2: require every step to equal (last-first)/nbins within a
//     relative tolerance of 1e-9.
//
// Errors:
//   - ErrInvalidEdges for short, non-increasing or unevenly spaced input.
//
// Complexity:
//   - Time O(len(edges)), Space O(1).
func EdgesFrom(edges []float64) (Edges, error) {
	const op = "EdgesFrom"
	if len(edges) < 2 {
		return Edges{}, histErrorf(op, ErrInvalidEdges)
	}
	n := len(edges) - 1
	e := Edges{Min: edges[0], Max: edges[n], N: n}
	if err := e.validate(); err != nil {
		return Edges{}, histErrorf(op, err)
	}

	want := (e.Max - e.Min) / float64(n)
	var k int
	var step float64
	for k = 0; k < n; k++ {
		step = edges[k+1] - edges[k]
		if !(step > 0) || !scalar.EqualWithinAbsOrRel(step, want, 0, edgeSpacingTol) {
			return Edges{}, histErrorf(op, ErrInvalidEdges)
		}
	}

	return e, nil
}

// validate enforces the Edges invariants.
func (e Edges) validate() error {
	if e.N < 1 {
		return ErrInvalidEdges
	}
	if math.IsNaN(e.Min) || math.IsInf(e.Min, 0) || math.IsNaN(e.Max) || math.IsInf(e.Max, 0) {
		return ErrInvalidEdges
	}
	if !(e.Min < e.Max) {
		return ErrInvalidEdges
	}

	return nil
}

// Scale is the reciprocal bin width, N / (Max - Min).
func (e Edges) Scale() float64 { return float64(e.N) / (e.Max - e.Min) }

// Width is the width of one bin.
func (e Edges) Width() float64 { return (e.Max - e.Min) / float64(e.N) }

// Values materialises the N+1 edge values.
// Complexity: O(N).
func (e Edges) Values() []float64 {
	return floats.Span(make([]float64, e.N+1), e.Min, e.Max)
}

// Centers returns the N bin midpoints.
// Complexity: O(N).
func (e Edges) Centers() []float64 {
	w := e.Width()
	out := make([]float64, e.N)
	for k := range out {
		out[k] = e.Min + (float64(k)+0.5)*w
	}

	return out
}

// Bin maps v to its 1-based bin. ok is false for NaN, v <= Min and v > Max.
// Complexity: O(1).
func (e Edges) Bin(v float64) (bin int, ok bool) {
	return binOf(v, e.Min, e.Scale(), e.N)
}

// binOf is the shared indexer kernel; nbins may be smaller than Edges.N when
// the output buffer is truncated.
func binOf(v, min, scale float64, nbins int) (int, bool) {
	i := (v - min) * scale
	if 0 < i && i <= float64(nbins) {
		return int(math.Ceil(i)), true
	}

	return 0, false
}

// Grid pairs an x (column) edge range with a y (row) edge range.
type Grid struct {
	X Edges // columns
	Y Edges // rows
}

// NewGrid validates both axes.
func NewGrid(x, y Edges) (Grid, error) {
	if err := x.validate(); err != nil {
		return Grid{}, histErrorf("NewGrid: x", err)
	}
	if err := y.validate(); err != nil {
		return Grid{}, histErrorf("NewGrid: y", err)
	}

	return Grid{X: x, Y: y}, nil
}

// Bin maps the pair (x, y) to 1-based (row, col). Both axes must be valid.
// Complexity: O(1).
func (g Grid) Bin(x, y float64) (row, col int, ok bool) {
	col, okx := g.X.Bin(x)
	row, oky := g.Y.Bin(y)
	if !okx || !oky {
		return 0, 0, false
	}

	return row, col, true
}

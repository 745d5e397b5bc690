// SPDX-License-Identifier: MIT
// Package: nanstat
//
// Purpose:
//   - Flat, fused per-element kernels shared by every reduction.
//   - One rule: a NaN element contributes exactly zero to each accumulator it
//     touches (sum, weighted sum, count).
//
// Determinism & Performance:
//   - Ascending index order, single running accumulator per quantity; no
//     re-association, so results are bit-reproducible.
//   - Integer element types skip the self-comparison (CanHoldNaN fast path);
//     the result is identical because integers are never NaN.

package nanstat

import (
	"math"

	"github.com/katalvlaran/nanstat/array"
)

// sumCountInto continues a running (sum, count) over the non-NaN elements of x.
func sumCountInto[T array.Number](s float64, n int, x []T) (float64, int) {
	if !array.CanHoldNaN[T]() {
		for _, v := range x {
			s += float64(v)
		}
		return s, n + len(x)
	}
	for _, v := range x {
		if v == v {
			s += float64(v)
			n++
		}
	}

	return s, n
}

// SumSlice returns Σ of the non-NaN elements of x (0 for an empty or all-NaN x).
func SumSlice[T array.Number](x []T) float64 {
	s, _ := sumCountInto(0, 0, x)
	return s
}

// CountSlice returns the number of non-NaN elements of x.
func CountSlice[T array.Number](x []T) int {
	if !array.CanHoldNaN[T]() {
		return len(x)
	}
	n := 0
	for _, v := range x {
		if v == v {
			n++
		}
	}

	return n
}

// MeanSlice returns Σx/n over the non-NaN elements; NaN when n == 0.
func MeanSlice[T array.Number](x []T) float64 {
	s, n := sumCountInto(0, 0, x)
	return s / float64(n)
}

// VarSlice returns the Bessel-corrected sample variance of the non-NaN
// elements (two-pass). The denominator is max(n-1, 0), so n <= 1 yields NaN.
func VarSlice[T array.Number](x []T) float64 {
	s, n := sumCountInto(0, 0, x)
	mu := s / float64(n)

	var ss, d float64
	nan := array.CanHoldNaN[T]()
	for _, v := range x {
		if nan && v != v {
			continue
		}
		d = float64(v) - mu
		ss += d * d
	}

	return ss / float64(max(n-1, 0))
}

// StdSlice returns sqrt(VarSlice(x)).
func StdSlice[T array.Number](x []T) float64 {
	return math.Sqrt(VarSlice(x))
}

// NanMin returns the smaller of a and b ignoring NaN: a NaN operand yields
// the other; a is preferred when a <= b.
func NanMin(a, b float64) float64 {
	if a != a {
		return b
	}
	if b < a {
		return b
	}

	return a
}

// NanMax returns the larger of a and b ignoring NaN: a NaN operand yields
// the other; a is preferred when a >= b.
func NanMax(a, b float64) float64 {
	if a != a {
		return b
	}
	if b > a {
		return b
	}

	return a
}

// extremaSlice folds NanMin/NanMax over x seeded with NaN, so an all-NaN or
// empty x returns (NaN, NaN).
func extremaSlice[T array.Number](x []T) (lo, hi float64) {
	lo, hi = math.NaN(), math.NaN()
	var f float64
	for _, v := range x {
		f = float64(v)
		lo = NanMin(lo, f)
		hi = NanMax(hi, f)
	}

	return lo, hi
}

// MinSlice returns the smallest non-NaN element, NaN if there is none.
func MinSlice[T array.Number](x []T) float64 {
	lo, _ := extremaSlice(x)
	return lo
}

// MaxSlice returns the largest non-NaN element, NaN if there is none.
func MaxSlice[T array.Number](x []T) float64 {
	_, hi := extremaSlice(x)
	return hi
}

// RangeSlice returns MaxSlice(x) - MinSlice(x).
func RangeSlice[T array.Number](x []T) float64 {
	lo, hi := extremaSlice(x)
	return hi - lo
}

// weightedMeanSlice returns Σ(w·x)/Σw over the positions where x is not NaN.
func weightedMeanSlice[T, W array.Number](x []T, w []W) float64 {
	var m, sw, wi float64
	nan := array.CanHoldNaN[T]()
	for i, v := range x {
		if nan && v != v {
			continue
		}
		wi = float64(w[i])
		sw += wi
		m += wi * float64(v)
	}

	return m / sw
}

// weightedVarSlice returns the reliability-weighted variance
//
//	Σ(w·(x−μ)²)/Σw · n/(n−1)
//
// where μ is the weighted mean and n is the count of non-NaN x (not Σw).
// The evaluation order s/Σw·n/(n−1) is fixed.
func weightedVarSlice[T, W array.Number](x []T, w []W) float64 {
	var m, sw, wi float64
	var n int
	nan := array.CanHoldNaN[T]()
	for i, v := range x {
		if nan && v != v {
			continue
		}
		wi = float64(w[i])
		n++
		sw += wi
		m += wi * float64(v)
	}
	mu := m / sw

	var s, d float64
	for i, v := range x {
		if nan && v != v {
			continue
		}
		d = float64(v) - mu
		s += d * d * float64(w[i])
	}

	return s / sw * float64(n) / float64(n-1)
}

// SPDX-License-Identifier: MIT
// Package: nanstat
//
// Purpose:
//   - Order statistics over the non-NaN subset of an array or of each axis slice.
//
// Exposed API:
//   - NanPercentile(A, p)       // linear interpolation, rank = p/100·(n−1)
//   - NanMedian(A)              // quickselect; equals NanPercentile(A, 50)
//   - NanMAD(A)                 // median(|x − median(x)|), no normal-consistency factor
//   - NanAAD(A)                 // mean(|x − mean(x)|)
//   - InCentralPercentile(A, p) // strict lo < x < hi mask
//
// Dims policy:
//   - DimsRows / DimsCols build a masked subset per column / row and apply the
//     whole-array algorithm to it. Any other dims value (DimsAll or > DimsCols)
//     computes over the whole array; this fallback is not an error.

package nanstat

import (
	"math"

	"github.com/katalvlaran/nanstat/array"
)

const (
	opNanPercentile       = "NanPercentile"
	opNanMedian           = "NanMedian"
	opNanMAD              = "NanMAD"
	opNanAAD              = "NanAAD"
	opInCentralPercentile = "InCentralPercentile"
)

// NanPercentile returns the p-th percentile of the non-NaN elements per group.
// Implementation:
//   - Stage 1: validate 0 <= p <= 100 (never clamped).
//   - Stage 2: per group, copy the masked subset into a reused scratch buffer and sort it.
//   - Stage 3: interpolate between the floor and ceil order statistics of rank p/100·(n−1).
//
// Errors:
//   - ErrPercentileRange, ErrNilArray.
//
// Complexity:
//   - Time O(n log n) per group, Space O(group length).
func NanPercentile[T array.Number](a *array.Dense[T], p float64, opts ...Option) (Reduction, error) {
	if err := validatePercentile(p); err != nil {
		return Reduction{}, statErrorf(opNanPercentile, err)
	}
	var buf []float64
	return reduce(opNanPercentile, a, permissive(gatherOptions(opts)), func(x []T) float64 {
		var v float64
		buf, v = percentileScratch(buf, x, p)
		return v
	})
}

// NanMedian returns the median of the non-NaN elements per group.
// Uses selection instead of a full sort; the result is identical to
// NanPercentile(a, 50).
func NanMedian[T array.Number](a *array.Dense[T], opts ...Option) (Reduction, error) {
	var buf []float64
	return reduce(opNanMedian, a, permissive(gatherOptions(opts)), func(x []T) float64 {
		buf = maskedInto(buf, x)
		return medianInPlace(buf)
	})
}

// NanMAD returns the median absolute deviation median(|x − median(x)|) of the
// non-NaN elements per group. No 1.4826 scale factor is applied. Only dims is
// honoured; the reduced axis is always kept.
func NanMAD[T array.Number](a *array.Dense[T], opts ...Option) (Reduction, error) {
	o := permissive(gatherOptions(opts))
	o.drop = false
	var buf []float64
	return reduce(opNanMAD, a, o, func(x []T) float64 {
		buf = maskedInto(buf, x)
		if len(buf) == 0 {
			return math.NaN()
		}
		med := medianInPlace(buf)
		for i, v := range buf {
			buf[i] = math.Abs(v - med)
		}
		return medianInPlace(buf)
	})
}

// NanAAD returns the mean absolute deviation mean(|x − mean(x)|) of the
// non-NaN elements per group, built on the MeanSlice kernel.
func NanAAD[T array.Number](a *array.Dense[T], opts ...Option) (Reduction, error) {
	var buf []float64
	return reduce(opNanAAD, a, permissive(gatherOptions(opts)), func(x []T) float64 {
		mu := MeanSlice(x)
		buf = maskedInto(buf, x)
		for i, v := range buf {
			buf[i] = math.Abs(v - mu)
		}
		return MeanSlice(buf)
	})
}

// InCentralPercentile marks the elements strictly between the (100−p)/2-th and
// (100+p)/2-th percentiles of the whole array. NaN elements are false.
// With p = 100 the bounds are the minimum and maximum, which are therefore
// always false; a constant array is all false for every p.
//
// Errors:
//   - ErrPercentileRange, ErrNilArray.
func InCentralPercentile[T array.Number](a *array.Dense[T], p float64) (*array.Dense[bool], error) {
	if err := validatePercentile(p); err != nil {
		return nil, statErrorf(opInCentralPercentile, err)
	}
	if err := array.ValidateNotNil(a); err != nil {
		return nil, statErrorf(opInCentralPercentile, err)
	}

	offset := (100 - p) / 2
	sorted, lo := percentileScratch(nil, a.Data(), offset)
	hi := percentileSorted(sorted, 100-offset)

	out := array.Like[bool](a)
	dst := out.Data()
	var f float64
	for i, v := range a.Data() {
		f = float64(v)
		dst[i] = lo < f && f < hi
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package: nanstat
//
// Purpose:
//   - Simple moving average with a symmetric, bounds-clipped window (1D) or
//     square window (2D), using the NaN-ignoring mean over each window.
//
// Determinism & Performance:
//   - Each window is accumulated from scratch in row-major order with the
//     shared sumCountInto kernel: O(len × window) per axis, no sliding-sum
//     drift, bit-identical to NanMean over the same window.

package nanstat

import (
	"github.com/katalvlaran/nanstat/array"
)

const opMovingMean = "MovingMean"

// MovingMean returns the moving mean of x with span n, shaped like x.
// Implementation:
//   - Stage 1: validate x and n >= 1; round even n up to the next odd span.
//   - Stage 2: for each position, clip [i−h, i+h] (and [j−h, j+h] for 2D) to
//     the array bounds, h = (n−1)/2; no padding, no wraparound.
//   - Stage 3: mean of the non-NaN elements in the window (NaN if none).
//
// Errors:
//   - ErrNilArray, ErrInvalidSpan.
//
// Complexity:
//   - 1D: O(len·n); 2D: O(rows·cols·n²). Space O(len) for the output.
func MovingMean[T array.Number](x *array.Dense[T], n int) (*array.Dense[float64], error) {
	if err := array.ValidateNotNil(x); err != nil {
		return nil, statErrorf(opMovingMean, err)
	}
	if n < 1 {
		return nil, statErrorf(opMovingMean, ErrInvalidSpan)
	}
	if n%2 == 0 {
		n++
	}
	h := (n - 1) / 2

	out := array.Like[float64](x)
	if x.NDim() == 1 {
		movingMean1D(out.Data(), x.Data(), h)
		return out, nil
	}
	movingMean2D(out.Data(), x.Data(), x.Rows(), x.Cols(), h)

	return out, nil
}

// MovingMeanSlice is MovingMean for a plain 1D slice.
func MovingMeanSlice[T array.Number](x []T, n int) ([]float64, error) {
	out, err := MovingMean(array.FromSlice(x), n)
	if err != nil {
		return nil, err
	}

	return out.Data(), nil
}

func movingMean1D[T array.Number](dst []float64, src []T, h int) {
	last := len(src) - 1
	var lo, hi int
	for i := range src {
		lo, hi = max(i-h, 0), min(i+h, last)
		dst[i] = MeanSlice(src[lo : hi+1])
	}
}

func movingMean2D[T array.Number](dst []float64, src []T, rows, cols, h int) {
	var i, j, k int
	var r0, r1, c0, c1, n int
	var s float64
	for i = 0; i < rows; i++ {
		r0, r1 = max(i-h, 0), min(i+h, rows-1)
		for j = 0; j < cols; j++ {
			c0, c1 = max(j-h, 0), min(j+h, cols-1)
			s, n = 0, 0
			for k = r0; k <= r1; k++ {
				s, n = sumCountInto(s, n, src[k*cols+c0:k*cols+c1+1])
			}
			dst[i*cols+j] = s / float64(n)
		}
	}
}

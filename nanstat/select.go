// SPDX-License-Identifier: MIT

package nanstat

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/nanstat/array"
)

// maskedInto appends the non-NaN elements of x, as float64, to buf[:0].
func maskedInto[T array.Number](buf []float64, x []T) []float64 {
	buf = buf[:0]
	nan := array.CanHoldNaN[T]()
	for _, v := range x {
		if nan && v != v {
			continue
		}
		buf = append(buf, float64(v))
	}

	return buf
}

// lerp interpolates between two adjacent order statistics.
// frac == 0 and lo == hi short-circuit so infinite order statistics do not
// turn into NaN through 0·Inf.
func lerp(lo, hi, frac float64) float64 {
	if frac == 0 || lo == hi {
		return lo
	}

	return lo + frac*(hi-lo)
}

// percentileSorted is the linear-interpolation order statistic of an
// ascending, NaN-free slice: rank = p/100·(n−1). Empty ⇒ NaN.
func percentileSorted(s []float64, p float64) float64 {
	n := len(s)
	if n == 0 {
		return math.NaN()
	}
	rank := p / 100 * float64(n-1)
	fl := math.Floor(rank)
	k := int(fl)
	if k >= n-1 {
		return s[n-1]
	}

	return lerp(s[k], s[k+1], rank-fl)
}

// percentileScratch sorts the masked subset of x in buf and interpolates.
func percentileScratch[T array.Number](buf []float64, x []T, p float64) ([]float64, float64) {
	buf = maskedInto(buf, x)
	slices.Sort(buf)

	return buf, percentileSorted(buf, p)
}

// selectKth partially orders s so that s[k] is the k-th smallest element,
// every s[:k] <= s[k] and every s[k+1:] >= s[k]. s must not contain NaN.
// Hoare partitioning around a median-of-three pivot value; deterministic.
func selectKth(s []float64, k int) {
	lo, hi := 0, len(s)-1
	var i, j int
	var p float64
	for lo < hi {
		p = medianOfThree(s[lo], s[lo+(hi-lo)/2], s[hi])
		i, j = lo, hi
		for i <= j {
			for s[i] < p {
				i++
			}
			for s[j] > p {
				j--
			}
			if i <= j {
				s[i], s[j] = s[j], s[i]
				i++
				j--
			}
		}
		switch {
		case k <= j:
			hi = j
		case k >= i:
			lo = i
		default:
			return // j < k < i: s[k] == p is in its final place
		}
	}
}

func medianOfThree(a, b, c float64) float64 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		return a
	}

	return b
}

// medianInPlace returns the median of a NaN-free slice, reordering it.
// It agrees exactly with percentileSorted(sorted(s), 50): both take
// rank (n−1)/2 and interpolate the two middle order statistics with lerp.
func medianInPlace(s []float64) float64 {
	n := len(s)
	if n == 0 {
		return math.NaN()
	}
	k := (n - 1) / 2
	selectKth(s, k)
	if n%2 == 1 {
		return s[k]
	}
	hi := s[k+1]
	for _, v := range s[k+2:] {
		if v < hi {
			hi = v
		}
	}

	return lerp(s[k], hi, 0.5)
}

// MedianSlice returns the median of the non-NaN elements of x (NaN if none).
// x is not modified.
func MedianSlice[T array.Number](x []T) float64 {
	return medianInPlace(maskedInto(make([]float64, 0, len(x)), x))
}

// PercentileSlice returns the p-th percentile of the non-NaN elements of x.
// Errors: ErrPercentileRange when p ∉ [0, 100].
func PercentileSlice[T array.Number](x []T, p float64) (float64, error) {
	if err := validatePercentile(p); err != nil {
		return math.NaN(), statErrorf(opNanPercentile, err)
	}
	_, v := percentileScratch(make([]float64, 0, len(x)), x, p)

	return v, nil
}

// validatePercentile rejects p outside [0, 100]; NaN fails both comparisons.
func validatePercentile(p float64) error {
	if !(p >= 0 && p <= 100) {
		return ErrPercentileRange
	}

	return nil
}

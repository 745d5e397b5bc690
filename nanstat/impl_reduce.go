// SPDX-License-Identifier: MIT
// Package: nanstat
//
// Purpose:
//   - Public NaN-ignoring reductions over *array.Dense, dispatched by dims.
//
// Exposed API:
//   - NanSum, NanCount, NanMean, NanVar, NanStd          // unweighted
//   - NanMeanWeighted, NanVarWeighted, NanStdWeighted    // reliability weights
//   - NanMinimum, NanMaximum, NanExtrema, NanRange       // order-free extrema
//
// Degenerate policy:
//   - All-NaN or empty groups: mean/var/std/min/max/range ⇒ NaN, sum ⇒ 0, count ⇒ 0.
//   - n <= 1 for variance: denominator clamps to 0 ⇒ NaN via 0/0.

package nanstat

import (
	"math"

	"github.com/katalvlaran/nanstat/array"
)

// Operation name constants for unified error wrapping.
const (
	opNanSum          = "NanSum"
	opNanCount        = "NanCount"
	opNanMean         = "NanMean"
	opNanVar          = "NanVar"
	opNanStd          = "NanStd"
	opNanMeanWeighted = "NanMeanWeighted"
	opNanVarWeighted  = "NanVarWeighted"
	opNanStdWeighted  = "NanStdWeighted"
	opNanMinimum      = "NanMinimum"
	opNanMaximum      = "NanMaximum"
	opNanExtrema      = "NanExtrema"
	opNanRange        = "NanRange"
)

// NanSum returns Σ of the non-NaN elements; NaNs contribute zero.
func NanSum[T array.Number](a *array.Dense[T], opts ...Option) (Reduction, error) {
	return reduce(opNanSum, a, gatherOptions(opts), SumSlice[T])
}

// NanCount returns the number of non-NaN elements per group.
func NanCount[T array.Number](a *array.Dense[T], opts ...Option) (Reduction, error) {
	return reduce(opNanCount, a, gatherOptions(opts), func(x []T) float64 {
		return float64(CountSlice(x))
	})
}

// NanMean returns Σx/n where n counts the non-NaN elements, not the group length.
// An all-NaN group yields 0/0 = NaN.
func NanMean[T array.Number](a *array.Dense[T], opts ...Option) (Reduction, error) {
	return reduce(opNanMean, a, gatherOptions(opts), MeanSlice[T])
}

// NanVar returns the two-pass sample variance Σ(x−μ)²/max(n−1, 0).
func NanVar[T array.Number](a *array.Dense[T], opts ...Option) (Reduction, error) {
	return reduce(opNanVar, a, gatherOptions(opts), VarSlice[T])
}

// NanStd returns sqrt(NanVar).
// Implementation:
//   - Stage 1: masked mean μ over the group.
//   - Stage 2: Σ over non-NaN of (x−μ)², divided by max(n−1, 0).
//   - Stage 3: square root.
//
// Behavior highlights:
//   - Never fails on degenerate input: n <= 1 resolves through 0/0 to NaN.
func NanStd[T array.Number](a *array.Dense[T], opts ...Option) (Reduction, error) {
	return reduce(opNanStd, a, gatherOptions(opts), StdSlice[T])
}

// NanMeanWeighted returns Σ(w·x)/Σw over the positions where x is not NaN.
// Errors: ErrDimensionMismatch when w is not shaped like a.
func NanMeanWeighted[T, W array.Number](a *array.Dense[T], w *array.Dense[W], opts ...Option) (Reduction, error) {
	return reduceWeighted(opNanMeanWeighted, a, w, gatherOptions(opts), weightedMeanSlice[T, W])
}

// NanVarWeighted returns the reliability-weighted variance
// (Σw(x−μ)²/Σw)·n/(n−1), with n the count of non-NaN elements.
func NanVarWeighted[T, W array.Number](a *array.Dense[T], w *array.Dense[W], opts ...Option) (Reduction, error) {
	return reduceWeighted(opNanVarWeighted, a, w, gatherOptions(opts), weightedVarSlice[T, W])
}

// NanStdWeighted returns sqrt(NanVarWeighted).
func NanStdWeighted[T, W array.Number](a *array.Dense[T], w *array.Dense[W], opts ...Option) (Reduction, error) {
	return reduceWeighted(opNanStdWeighted, a, w, gatherOptions(opts), func(x []T, wx []W) float64 {
		return math.Sqrt(weightedVarSlice(x, wx))
	})
}

// NanMinimum returns the smallest non-NaN element per group (NaN if none).
func NanMinimum[T array.Number](a *array.Dense[T], opts ...Option) (Reduction, error) {
	return reduce(opNanMinimum, a, gatherOptions(opts), MinSlice[T])
}

// NanMaximum returns the largest non-NaN element per group (NaN if none).
func NanMaximum[T array.Number](a *array.Dense[T], opts ...Option) (Reduction, error) {
	return reduce(opNanMaximum, a, gatherOptions(opts), MaxSlice[T])
}

// NanExtrema returns NanMinimum and NanMaximum with the same dims semantics.
// Both come from a single pass over each group.
func NanExtrema[T array.Number](a *array.Dense[T], opts ...Option) (lo, hi Reduction, err error) {
	o := gatherOptions(opts)
	var highs []float64
	lo, err = reduce(opNanExtrema, a, o, func(x []T) float64 {
		l, h := extremaSlice(x)
		highs = append(highs, h)
		return l
	})
	if err != nil {
		return Reduction{}, Reduction{}, err
	}
	if lo.IsScalar() {
		return lo, scalarResult(highs[0]), nil
	}
	hiValues := lo.values.Clone()
	copy(hiValues.Data(), highs)

	return lo, Reduction{values: hiValues}, nil
}

// NanRange returns max − min per group; NaN when the group has no non-NaN element.
func NanRange[T array.Number](a *array.Dense[T], opts ...Option) (Reduction, error) {
	return reduce(opNanRange, a, gatherOptions(opts), RangeSlice[T])
}

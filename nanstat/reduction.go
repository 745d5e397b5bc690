// SPDX-License-Identifier: MIT
// Package: nanstat
//
// Purpose:
//   - Dims-aware dispatch: apply a flat kernel to the whole array, to every
//     column (DimsRows) or to every row (DimsCols), and shape the result.
//
// Determinism & Performance:
//   - Rows are passed to kernels as no-copy sub-slices of the backing buffer.
//   - Columns are gathered top-to-bottom into one reused scratch slice, so the
//     same kernel runs with the same ascending order on both axes.
//   - Groups are independent; they are evaluated sequentially in index order.

package nanstat

import (
	"math"

	"github.com/katalvlaran/nanstat/array"
)

// Reduction is the outcome of a reduction: a scalar for whole-array
// reductions, or a Dense of per-group values for axis reductions.
type Reduction struct {
	scalar float64
	values *array.Dense[float64] // nil for scalar results
}

// scalarResult wraps a whole-array value.
func scalarResult(v float64) Reduction { return Reduction{scalar: v} }

// IsScalar reports whether the reduction collapsed the whole array.
func (r Reduction) IsScalar() bool { return r.values == nil }

// Scalar returns the scalar value. For an axis reduction holding exactly one
// value it returns that value; for any other axis reduction it returns NaN.
func (r Reduction) Scalar() float64 {
	if r.values == nil {
		return r.scalar
	}
	if r.values.Len() == 1 {
		return r.values.Data()[0]
	}

	return math.NaN()
}

// Values returns the per-group values. A scalar reduction is returned as a
// length-1 vector so callers can treat both cases uniformly.
func (r Reduction) Values() *array.Dense[float64] {
	if r.values == nil {
		return array.FromSlice([]float64{r.scalar})
	}

	return r.values
}

// Float64s returns the flat row-major values (length 1 for scalars).
func (r Reduction) Float64s() []float64 { return r.Values().Data() }

// axisResult shapes per-group values for dims ∈ {DimsRows, DimsCols}.
//   - 2D input: DimsRows ⇒ 1×c, DimsCols ⇒ r×1; drop ⇒ 1D vector.
//   - 1D input (an n×1 column): DimsRows ⇒ single value (vector of 1, or a
//     scalar when dropped); DimsCols ⇒ vector of n.
func axisResult(ndim, dims int, drop bool, out []float64) Reduction {
	if ndim == 1 {
		if dims == DimsRows && drop {
			return scalarResult(out[0])
		}
		return Reduction{values: array.FromSlice(out)}
	}
	if drop {
		return Reduction{values: array.FromSlice(out)}
	}

	var d *array.Dense[float64]
	if dims == DimsRows {
		d, _ = array.FromRows(1, len(out), out)
	} else {
		d, _ = array.FromRows(len(out), 1, out)
	}

	return Reduction{values: d}
}

// reduce applies kernel to each group selected by o.dims.
// Errors: ErrNilArray; ErrInvalidDims for dims outside {DimsAll, DimsRows, DimsCols}.
func reduce[T array.Number](op string, a *array.Dense[T], o Options, kernel func([]T) float64) (Reduction, error) {
	if err := array.ValidateNotNil(a); err != nil {
		return Reduction{}, statErrorf(op, err)
	}

	data := a.Data()
	r, c := a.Shape()
	switch o.dims {
	case DimsAll:
		return scalarResult(kernel(data)), nil

	case DimsRows:
		out := make([]float64, c)
		col := make([]T, r)
		var i, j int
		for j = 0; j < c; j++ {
			for i = 0; i < r; i++ {
				col[i] = data[i*c+j]
			}
			out[j] = kernel(col)
		}
		return axisResult(a.NDim(), o.dims, o.drop, out), nil

	case DimsCols:
		out := make([]float64, r)
		for i := 0; i < r; i++ {
			out[i] = kernel(data[i*c : (i+1)*c])
		}
		return axisResult(a.NDim(), o.dims, o.drop, out), nil

	default:
		return Reduction{}, statErrorf(op, ErrInvalidDims)
	}
}

// reduceWeighted is reduce for kernels over (x, w) pairs of identical shape.
// Errors: ErrNilArray, ErrDimensionMismatch, ErrInvalidDims.
func reduceWeighted[T, W array.Number](op string, a *array.Dense[T], w *array.Dense[W], o Options,
	kernel func([]T, []W) float64) (Reduction, error) {
	if err := array.ValidateSameShape(a, w); err != nil {
		return Reduction{}, statErrorf(op, err)
	}

	data, wts := a.Data(), w.Data()
	r, c := a.Shape()
	switch o.dims {
	case DimsAll:
		return scalarResult(kernel(data, wts)), nil

	case DimsRows:
		out := make([]float64, c)
		col := make([]T, r)
		wcol := make([]W, r)
		var i, j int
		for j = 0; j < c; j++ {
			for i = 0; i < r; i++ {
				col[i] = data[i*c+j]
				wcol[i] = wts[i*c+j]
			}
			out[j] = kernel(col, wcol)
		}
		return axisResult(a.NDim(), o.dims, o.drop, out), nil

	case DimsCols:
		out := make([]float64, r)
		for i := 0; i < r; i++ {
			out[i] = kernel(data[i*c:(i+1)*c], wts[i*c:(i+1)*c])
		}
		return axisResult(a.NDim(), o.dims, o.drop, out), nil

	default:
		return Reduction{}, statErrorf(op, ErrInvalidDims)
	}
}

// permissive maps unrecognised axes to DimsAll; order statistics fall back
// to the whole array instead of failing.
func permissive(o Options) Options {
	if o.dims != DimsRows && o.dims != DimsCols {
		o.dims = DimsAll
	}

	return o
}

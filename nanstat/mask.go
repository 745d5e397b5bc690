// SPDX-License-Identifier: MIT

package nanstat

import "github.com/katalvlaran/nanstat/array"

const opMaskInto = "MaskInto"

// MaskSlice fills dst[i] with x[i] == x[i], i.e. true iff x[i] is not NaN.
// Integer element types take a constant-true path. len(dst) must be >= len(x).
// Complexity: O(len(x)).
func MaskSlice[T array.Number](dst []bool, x []T) []bool {
	dst = dst[:len(x)]
	if !array.CanHoldNaN[T]() {
		for i := range dst {
			dst[i] = true
		}
		return dst
	}
	for i, v := range x {
		dst[i] = v == v // unordered self-comparison: false only for NaN
	}

	return dst
}

// Mask allocates a boolean array shaped like a marking its non-NaN elements.
// A nil a yields nil.
func Mask[T array.Number](a *array.Dense[T]) *array.Dense[bool] {
	if a == nil {
		return nil
	}
	dst := array.Like[bool](a)
	MaskSlice(dst.Data(), a.Data())

	return dst
}

// MaskInto fills dst (same shape as a) and returns it.
// Errors: ErrNilArray, ErrDimensionMismatch.
func MaskInto[T array.Number](dst *array.Dense[bool], a *array.Dense[T]) (*array.Dense[bool], error) {
	if err := array.ValidateSameShape(dst, a); err != nil {
		return nil, statErrorf(opMaskInto, err)
	}
	MaskSlice(dst.Data(), a.Data())

	return dst, nil
}

// SPDX-License-Identifier: MIT

// Package array: element-type constraints and type-category checks.
package array

import "golang.org/x/exp/constraints"

// Number is the set of ordered numeric element types accepted by the
// statistical kernels. Rational types are not part of the set.
type Number interface {
	constraints.Integer | constraints.Float
}

// CanHoldNaN reports whether T is a floating-point kind.
// The check is arithmetic (1/2 truncates to 0 only for integers), so named
// types with an underlying float kind are classified correctly.
// Complexity: O(1).
func CanHoldNaN[T Number]() bool {
	one := T(1)
	two := one + one

	return one/two != 0
}

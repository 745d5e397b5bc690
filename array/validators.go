// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//  - Single source of truth for nil/shape guards used by nanstat and hist.
//  - Return wrapped sentinel errors so call sites can wrap again uniformly.

package array

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the array reference is non-nil.
// Returns ErrNilArray if a == nil.
// Complexity: O(1).
func ValidateNotNil[T any](a *Dense[T]) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArray)
	}

	return nil
}

// ValidateSameShape is a composite check: NotNil(a) → NotNil(b) → equal layout.
// Errors: ErrNilArray or ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T, U any](a *Dense[T], b *Dense[U]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if !SameShape(a, b) {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

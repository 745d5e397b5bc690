// SPDX-License-Identifier: MIT

// Package array - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Model both 1D vectors (ndim=1, cols=1) and 2D matrices over the same flat slice.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep traversal deterministic (fixed row-major loop order).
//
// Complexity quicksheet:
//   - NewDense/NewVector: O(n) zero-init; FromSlice/FromRows: O(1) (no copy);
//     At/Set: O(1); Clone: O(n); Row: O(1); Col: O(rows).

package array

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxCol      = "Col"
	ctxFromRows = "FromRows"
	ctxNewDense = "NewDense"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major array.
//   - ndim is 1 for vectors and 2 for matrices.
//   - r,c hold the dimensions; a vector of length n has r=n, c=1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T any] struct {
	ndim int // 1 (vector) or 2 (matrix)
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - Zero-area shapes (0×N, N×0) are legal; reductions over them yield NaN.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T any](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxNewDense, rows, cols, ErrInvalidDimensions)
	}

	return &Dense[T]{ndim: 2, r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewVector creates a zero 1D array of length n (n<0 is clamped to an empty vector).
// Complexity: O(n).
func NewVector[T any](n int) *Dense[T] {
	if n < 0 {
		n = 0
	}

	return &Dense[T]{ndim: 1, r: n, c: 1, data: make([]T, n)}
}

// FromSlice wraps data as a 1D array without copying.
// Mutations through the returned Dense are visible in data and vice versa.
// Complexity: O(1).
func FromSlice[T any](data []T) *Dense[T] {
	return &Dense[T]{ndim: 1, r: len(data), c: 1, data: data}
}

// FromRows wraps a row-major flat slice as an rows×cols matrix without copying.
// Implementation:
//   - Stage 1: validate non-negative shape.
//   - Stage 2: require len(data) == rows*cols.
//
// Errors:
//   - ErrInvalidDimensions for negative shape, ErrDimensionMismatch for a bad length.
//
// Complexity:
//   - Time O(1), Space O(1).
func FromRows[T any](rows, cols int, data []T) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxFromRows, rows, cols, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, denseErrorf(ctxFromRows, rows, cols, ErrDimensionMismatch)
	}

	return &Dense[T]{ndim: 2, r: rows, c: cols, data: data}, nil
}

// Full returns a rows×cols matrix with every element set to v.
// Complexity: O(r*c).
func Full[T any](rows, cols int, v T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// Like allocates a zero array of element type U with the same layout as a.
// Complexity: O(len(a)).
func Like[U, T any](a *Dense[T]) *Dense[U] {
	return &Dense[U]{ndim: a.ndim, r: a.r, c: a.c, data: make([]U, len(a.data))}
}

// SameShape reports whether a and b share ndim, rows and cols.
// Nil operands never match.
func SameShape[T, U any](a *Dense[T], b *Dense[U]) bool {
	if a == nil || b == nil {
		return false
	}

	return a.ndim == b.ndim && a.r == b.r && a.c == b.c
}

// NDim returns 1 for vectors and 2 for matrices.
func (m *Dense[T]) NDim() int { return m.ndim }

// Rows returns the row count (the length for vectors).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count (1 for vectors).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the total number of elements.
func (m *Dense[T]) Len() int { return len(m.data) }

// Data exposes the flat row-major backing slice (no copy).
func (m *Dense[T]) Data() []T { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Vectors are addressed as (i, 0).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// NaN and ±Inf are legal values: missing data is encoded as NaN.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns row i as a sub-slice of the backing storage (no copy).
// Complexity: O(1).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// Col returns a copy of column j.
// Complexity: O(rows).
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy with the same layout.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{ndim: m.ndim, r: m.r, c: m.c, data: cp}
}

// String renders one bracketed line per row; vectors render on a single line.
// Intended for logs and debugging, not hot paths.
func (m *Dense[T]) String() string {
	var b strings.Builder
	if m.ndim == 1 {
		b.WriteString(_fmtRowOpen)
		for i, v := range m.data {
			if i > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%v", v)
		}
		b.WriteString(_fmtRowClose)

		return b.String()
	}

	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

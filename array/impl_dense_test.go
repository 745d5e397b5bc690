// SPDX-License-Identifier: MIT

// Package array_test contains unit tests for the generic Dense container.
package array_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nanstat/array"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := array.NewDense[float64](-1, 5)
	require.ErrorIs(t, err, array.ErrInvalidDimensions)

	_, err = array.NewDense[float64](5, -1)
	require.ErrorIs(t, err, array.ErrInvalidDimensions)

	// Zero-area shapes are legal.
	m, err := array.NewDense[float64](0, 3)
	require.NoError(t, err)
	require.Equal(t, 0, m.Len())
}

// TestRowsColsShape verifies dimension accessors for matrices and vectors.
func TestRowsColsShape(t *testing.T) {
	m, err := array.NewDense[int](3, 4)
	require.NoError(t, err)
	require.Equal(t, 2, m.NDim())
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 12, m.Len())

	v := array.NewVector[float32](5)
	r, c := v.Shape()
	require.Equal(t, 1, v.NDim())
	require.Equal(t, 5, r)
	require.Equal(t, 1, c)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := array.NewDense[float64](2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, array.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, array.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, array.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, array.ErrOutOfRange)

	_, err = m.Col(-1)
	require.ErrorIs(t, err, array.ErrOutOfRange)
}

// TestSetGetAcceptsNaN validates that missing values (NaN) are storable.
func TestSetGetAcceptsNaN(t *testing.T) {
	m, err := array.NewDense[float64](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, math.NaN()))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}

// TestFromRowsSharesStorage checks the no-copy contract and length validation.
func TestFromRowsSharesStorage(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := array.FromRows(2, 3, data)
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	data[0] = 42
	v, _ := m.At(0, 0)
	require.Equal(t, 42.0, v)

	_, err = array.FromRows(2, 2, data)
	require.ErrorIs(t, err, array.ErrDimensionMismatch)
}

// TestCloneIndependent verifies Clone produces an independent buffer.
func TestCloneIndependent(t *testing.T) {
	m := array.FromSlice([]int{1, 2, 3})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 9))

	v, _ := m.At(0, 0)
	require.Equal(t, 1, v)
	require.True(t, array.SameShape(m, cp))
}

// TestCanHoldNaN classifies integer and float kinds, including named types.
func TestCanHoldNaN(t *testing.T) {
	type celsius float64
	type count uint16

	require.True(t, array.CanHoldNaN[float64]())
	require.True(t, array.CanHoldNaN[float32]())
	require.True(t, array.CanHoldNaN[celsius]())
	require.False(t, array.CanHoldNaN[int]())
	require.False(t, array.CanHoldNaN[uint8]())
	require.False(t, array.CanHoldNaN[count]())
}

// TestValidateSameShape covers nil and layout mismatches.
func TestValidateSameShape(t *testing.T) {
	a, _ := array.NewDense[float64](2, 3)
	b, _ := array.NewDense[bool](2, 3)
	c, _ := array.NewDense[bool](3, 2)

	require.NoError(t, array.ValidateSameShape(a, b))
	require.ErrorIs(t, array.ValidateSameShape(a, c), array.ErrDimensionMismatch)
	require.ErrorIs(t, array.ValidateSameShape[float64, bool](nil, b), array.ErrNilArray)

	// A vector and a column matrix of the same length differ in ndim.
	v := array.NewVector[float64](3)
	col, _ := array.NewDense[float64](3, 1)
	require.False(t, array.SameShape(v, col))
}

// TestString renders vectors on one line and matrices row by row.
func TestString(t *testing.T) {
	v := array.FromSlice([]float64{1, 2.5})
	require.Equal(t, "[1, 2.5]\n", v.String())

	m, _ := array.FromRows(2, 2, []int{1, 2, 3, 4})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestDoEarlyStop verifies row-major visiting and early exit.
func TestDoEarlyStop(t *testing.T) {
	m, _ := array.FromRows(2, 2, []int{1, 2, 3, 4})
	var seen []int
	m.Do(func(i, j int, v int) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []int{1, 2, 3}, seen)
}

// TestFullFillsEveryElement verifies Full sets every cell and validates the shape.
func TestFullFillsEveryElement(t *testing.T) {
	m, err := array.Full(2, 3, math.NaN())
	require.NoError(t, err)
	require.Equal(t, 2, m.NDim())
	require.Equal(t, 6, m.Len())
	for _, v := range m.Data() {
		require.True(t, math.IsNaN(v))
	}

	z, err := array.Full(0, 4, int8(7))
	require.NoError(t, err)
	require.Equal(t, 0, z.Len())

	_, err = array.Full(-1, 2, 1.0)
	require.ErrorIs(t, err, array.ErrInvalidDimensions)
}

// SPDX-License-Identifier: MIT

package nanstat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nanstat/array"
	"github.com/katalvlaran/nanstat/nanstat"
)

func TestMask(t *testing.T) {
	m := nanstat.Mask(vec(1.0, nan, 3))
	assert.Equal(t, []bool{true, false, true}, m.Data())

	ints := nanstat.Mask(vec[uint8](0, 255))
	assert.Equal(t, []bool{true, true}, ints.Data())

	assert.Nil(t, nanstat.Mask[float64](nil))
}

func TestMaskInto(t *testing.T) {
	a := mat(t, 2, 2,
		nan, 1.0,
		2, nan,
	)
	dst := array.Like[bool](a)
	got, err := nanstat.MaskInto(dst, a)
	require.NoError(t, err)
	assert.Same(t, dst, got)
	assert.Equal(t, []bool{false, true, true, false}, dst.Data())

	_, err = nanstat.MaskInto(array.NewVector[bool](3), a)
	assert.ErrorIs(t, err, nanstat.ErrDimensionMismatch)
}

func TestMaskSlice_ReusesBuffer(t *testing.T) {
	buf := make([]bool, 8)
	got := nanstat.MaskSlice(buf, []float32{1, float32(nan)})
	assert.Equal(t, []bool{true, false}, got)
	assert.Equal(t, &buf[0], &got[0])
}

// SPDX-License-Identifier: MIT

package nanstat_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nanstat/array"
	"github.com/katalvlaran/nanstat/nanstat"
)

func TestMovingMean_ClippedWindow(t *testing.T) {
	got, err := nanstat.MovingMeanSlice([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2, 3, 4, 4.5}, got)
}

func TestMovingMean_EvenSpanRoundsUp(t *testing.T) {
	even, err := nanstat.MovingMeanSlice([]float64{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	odd, err := nanstat.MovingMeanSlice([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	assert.Equal(t, odd, even)
}

func TestMovingMean_SpanOneIsIdentity(t *testing.T) {
	got, err := nanstat.MovingMeanSlice([]int{4, -2, 7}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, -2, 7}, got)
}

func TestMovingMean_WideSpanIsGlobalMean(t *testing.T) {
	got, err := nanstat.MovingMeanSlice([]float64{1, 2, 3, 6}, 99)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3, 3}, got)
}

func TestMovingMean_NaNExcludedFromWindow(t *testing.T) {
	got, err := nanstat.MovingMeanSlice([]float64{1, nan, 3}, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)

	got, err = nanstat.MovingMeanSlice([]float64{nan, 1}, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got[0]))
	assert.Equal(t, 1.0, got[1])
}

func TestMovingMean_2D(t *testing.T) {
	a := mat(t, 3, 3,
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	got, err := nanstat.MovingMean(a, 3)
	require.NoError(t, err)
	assert.True(t, array.SameShape(a, got))

	want := []float64{
		3, 3.5, 4,
		4.5, 5, 5.5,
		6, 6.5, 7,
	}
	if diff := cmp.Diff(want, got.Data(), floatOpts); diff != "" {
		t.Fatalf("moving mean mismatch (-want +got):\n%s", diff)
	}
}

// TestMovingMean_MatchesNanMeanOverWindow checks each output against NanMean
// of the same clipped window.
func TestMovingMean_MatchesNanMeanOverWindow(t *testing.T) {
	x := []float64{0.1, nan, 0.7, 1.3, nan, nan, 2.9, 0.2}
	const span, h = 5, 2

	got, err := nanstat.MovingMeanSlice(x, span)
	require.NoError(t, err)
	for i := range x {
		lo, hi := max(i-h, 0), min(i+h, len(x)-1)
		want, err := nanstat.NanMean(array.FromSlice(x[lo : hi+1]))
		require.NoError(t, err)
		assert.Equal(t, want.Scalar(), got[i], "position %d", i)
	}
}

func TestMovingMean_Errors(t *testing.T) {
	_, err := nanstat.MovingMeanSlice([]float64{1}, 0)
	assert.ErrorIs(t, err, nanstat.ErrInvalidSpan)

	_, err = nanstat.MovingMean[float64](nil, 3)
	assert.ErrorIs(t, err, nanstat.ErrNilArray)
}

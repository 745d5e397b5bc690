// SPDX-License-Identifier: MIT

package nanstat_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nanstat/array"
	"github.com/katalvlaran/nanstat/nanstat"
)

func TestNanPercentile_LinearInterpolation(t *testing.T) {
	a := vec(nan, 4.0, 1, 3, 2)
	cases := []struct {
		p, want float64
	}{
		{0, 1},
		{25, 1.75},
		{50, 2.5},
		{100, 4},
	}
	for _, tc := range cases {
		r, err := nanstat.NanPercentile(a, tc.p)
		require.NoError(t, err)
		assert.Equal(t, tc.want, r.Scalar(), "p=%v", tc.p)
	}
}

func TestNanPercentile_RejectsOutOfRange(t *testing.T) {
	for _, p := range []float64{-1, 100.5, nan} {
		_, err := nanstat.NanPercentile(vec(1.0, 2), p)
		assert.ErrorIs(t, err, nanstat.ErrPercentileRange, "p=%v", p)

		_, err = nanstat.PercentileSlice([]float64{1, 2}, p)
		assert.ErrorIs(t, err, nanstat.ErrPercentileRange, "p=%v", p)

		_, err = nanstat.InCentralPercentile(vec(1.0, 2), p)
		assert.ErrorIs(t, err, nanstat.ErrPercentileRange, "p=%v", p)
	}
}

func TestNanPercentile_InfiniteOrderStatistics(t *testing.T) {
	inf := math.Inf(1)
	r, err := nanstat.NanPercentile(vec(inf, inf, 1), 100)
	require.NoError(t, err)
	assert.Equal(t, inf, r.Scalar())

	r, err = nanstat.NanPercentile(vec(inf, inf, 1), 75)
	require.NoError(t, err)
	assert.Equal(t, inf, r.Scalar())
}

func TestNanPercentile_EmptyIsNaN(t *testing.T) {
	r, err := nanstat.NanPercentile(vec(nan, nan), 30)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r.Scalar()))
}

func TestNanMedian(t *testing.T) {
	r, err := nanstat.NanMedian(vec(5.0, nan, 1, 3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, r.Scalar())

	r, err = nanstat.NanMedian(vec(5.0, nan, 1, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, 2.5, r.Scalar())

	assert.Equal(t, 2.5, nanstat.MedianSlice([]int{4, 1, 2, 3}))
	assert.True(t, math.IsNaN(nanstat.MedianSlice([]float64{nan})))
}

func TestNanMedian_DoesNotModifyInput(t *testing.T) {
	x := []float64{9, 1, nan, 5, 3}
	before := append([]float64(nil), x...)

	_, err := nanstat.NanMedian(array.FromSlice(x))
	require.NoError(t, err)
	_ = nanstat.MedianSlice(x)

	if diff := cmp.Diff(before, x, floatOpts); diff != "" {
		t.Fatalf("input modified (-before +after):\n%s", diff)
	}
}

// TestMedianMatchesPercentile50 checks that selection and full sort agree
// bit for bit, including duplicates and even lengths.
func TestMedianMatchesPercentile50(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		x, _ := randomWithNaN(rng, 1+rng.Intn(60), 0.25)

		med := nanstat.MedianSlice(x)
		p50, err := nanstat.PercentileSlice(x, 50)
		require.NoError(t, err)

		if math.IsNaN(p50) {
			assert.True(t, math.IsNaN(med))
			continue
		}
		assert.Equal(t, p50, med, "trial %d: %v", trial, x)
	}
}

func TestOrderStatistics_Axis(t *testing.T) {
	a := mat(t, 2, 3,
		1.0, nan, 3,
		4, 5, nan,
	)

	med, err := nanstat.NanMedian(a, nanstat.WithDims(nanstat.DimsRows))
	require.NoError(t, err)
	requireFloats(t, []float64{2.5, 5, 3}, med)

	p, err := nanstat.NanPercentile(a, 100, nanstat.WithDims(nanstat.DimsCols), nanstat.WithDrop())
	require.NoError(t, err)
	assert.Equal(t, 1, p.Values().NDim())
	requireFloats(t, []float64{3, 5}, p)
}

func TestOrderStatistics_UnknownDimsFallBackToWholeArray(t *testing.T) {
	a := mat(t, 2, 3,
		1.0, nan, 3,
		4, 5, nan,
	)
	med, err := nanstat.NanMedian(a, nanstat.WithDims(7))
	require.NoError(t, err)
	assert.True(t, med.IsScalar())
	assert.Equal(t, 3.5, med.Scalar())
}

func TestNanMAD(t *testing.T) {
	r, err := nanstat.NanMAD(vec(1.0, 1, 2, 2, 4, 6, 9, nan))
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Scalar())

	r, err = nanstat.NanMAD(vec(nan, nan))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r.Scalar()))
}

func TestNanMAD_KeepsReducedAxis(t *testing.T) {
	a := mat(t, 2, 3,
		1.0, 2, 4,
		3, 3, 3,
	)
	r, err := nanstat.NanMAD(a, nanstat.WithDims(nanstat.DimsCols), nanstat.WithDrop())
	require.NoError(t, err)
	rows, cols := r.Values().Shape()
	assert.Equal(t, 2, r.Values().NDim())
	assert.Equal(t, [2]int{2, 1}, [2]int{rows, cols})
	requireFloats(t, []float64{1, 0}, r)
}

func TestNanAAD(t *testing.T) {
	r, err := nanstat.NanAAD(vec(1.0, 2, 3, 4, nan))
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Scalar())

	r, err = nanstat.NanAAD(vec[float64]())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r.Scalar()))
}

func TestInCentralPercentile(t *testing.T) {
	a := vec(1.0, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	m, err := nanstat.InCentralPercentile(a, 50)
	require.NoError(t, err)
	// Bounds are 3.25 and 7.75.
	assert.Equal(t,
		[]bool{false, false, false, true, true, true, true, false, false, false},
		m.Data())
}

func TestInCentralPercentile_BoundsAreExclusive(t *testing.T) {
	m, err := nanstat.InCentralPercentile(vec(1.0, 2, 3, nan, 4, 5), 100)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, false, true, false}, m.Data())

	m, err = nanstat.InCentralPercentile(vec(2.0, 2, 2), 100)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, m.Data())

	m, err = nanstat.InCentralPercentile(vec(1.0, 2, 3), 0)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, m.Data())
}

func TestInCentralPercentile_PreservesShape(t *testing.T) {
	a := mat(t, 2, 2,
		1.0, 2,
		3, 4,
	)
	m, err := nanstat.InCentralPercentile(a, 100)
	require.NoError(t, err)
	assert.True(t, array.SameShape(a, m))
	assert.Equal(t, []bool{false, true, true, false}, m.Data())
}

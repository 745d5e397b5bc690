// SPDX-License-Identifier: MIT
// Package nanstat_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures (vectors, matrices, random data with NaNs).
//   • go-cmp options that treat NaN == NaN and tolerate rounding.

package nanstat_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nanstat/array"
	"github.com/katalvlaran/nanstat/nanstat"
)

var nan = math.NaN()

// floatOpts compares float64 values with NaN equal to NaN and a tight tolerance.
var floatOpts = cmp.Options{
	cmpopts.EquateNaNs(),
	cmpopts.EquateApprox(0, 1e-12),
}

// mat builds an r×c matrix from row-major data or fails the test.
func mat[T array.Number](t *testing.T, r, c int, data ...T) *array.Dense[T] {
	t.Helper()
	m, err := array.FromRows(r, c, data)
	require.NoError(t, err)

	return m
}

// vec wraps values as a 1D array.
func vec[T array.Number](data ...T) *array.Dense[T] {
	return array.FromSlice(data)
}

// requireFloats compares a reduction's flat values against want.
func requireFloats(t *testing.T, want []float64, got nanstat.Reduction) {
	t.Helper()
	if diff := cmp.Diff(want, got.Float64s(), floatOpts); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

// randomWithNaN returns n values in [-50, 50) with roughly frac of them NaN,
// plus a copy with the NaNs removed.
func randomWithNaN(rng *rand.Rand, n int, frac float64) (withNaN, clean []float64) {
	withNaN = make([]float64, n)
	for i := range withNaN {
		if rng.Float64() < frac {
			withNaN[i] = nan
			continue
		}
		// Quantise to produce duplicates for the order-statistic tests.
		withNaN[i] = math.Round((rng.Float64()*100-50)*4) / 4
		clean = append(clean, withNaN[i])
	}

	return withNaN, clean
}

// SPDX-License-Identifier: MIT

package nanstat_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nanstat/array"
	"github.com/katalvlaran/nanstat/nanstat"
)

func ExampleNanMean() {
	a := array.FromSlice([]float64{1, math.NaN(), 3})
	r, _ := nanstat.NanMean(a)
	fmt.Println(r.Scalar())
	// Output: 2
}

func ExampleNanMedian_columns() {
	a, _ := array.FromRows(3, 2, []float64{
		1, math.NaN(),
		5, 2,
		3, 4,
	})
	r, _ := nanstat.NanMedian(a, nanstat.WithDims(nanstat.DimsRows), nanstat.WithDrop())
	fmt.Println(r.Float64s())
	// Output: [3 3]
}

func ExampleMovingMeanSlice() {
	out, _ := nanstat.MovingMeanSlice([]float64{1, 2, 3, 4, 5}, 3)
	fmt.Println(out)
	// Output: [1.5 2 3 4 4.5]
}

func ExampleInCentralPercentile() {
	a := array.FromSlice([]float64{1, 2, 3, math.NaN(), 4, 5})
	m, _ := nanstat.InCentralPercentile(a, 100)
	fmt.Println(m.Data())
	// Output: [false true true false true false]
}

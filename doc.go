// Package nanstat is a small toolkit for summarising numeric arrays that
// encode missing values as NaN: reductions, order statistics, moving means
// and regular-grid histograms.
//
// What is in the module?
//
//	array/    generic row-major Dense[T] (1D or 2D) shared by every package
//	nanstat/  NaN masks, NanSum/NanMean/NanStd…, weighted variants,
//	          percentiles, median, MAD/AAD, moving mean
//	hist/     equal-width bin edges, 1D and 2D in-place accumulators
//	cmd/nanstat  CLI: describe, hist, movmean over CSV / whitespace tables
//
// Core rules:
//
//   - A NaN element contributes zero to every sum, weighted sum and count.
//   - Degenerate input (all NaN, n <= 1 for variance) is not an error;
//     it resolves to NaN. Only precondition violations return errors.
//   - Histogram bins are half-open (lo, hi]; the global lower edge is excluded.
//   - Accumulators add into caller buffers and never reset them.
//
// Quick example:
//
//	a := array.FromSlice([]float64{1, math.NaN(), 3})
//	m, _ := nanstat.NanMean(a)          // m.Scalar() == 2
//	e, _ := hist.NewEdges(0, 4, 4)
//	c, _ := hist.Counts(a.Data(), e)    // [1 0 1 0]
//
// See examples/ for runnable scenarios.
package nanstat

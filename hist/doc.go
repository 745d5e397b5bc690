// Package hist bins samples into equally spaced 1D and 2D histograms.
//
// What is it?
//
//	A regular grid of nbins equal-width bins over [Min, Max] lets every sample
//	be mapped to its bin with one subtraction, one multiply and one ceil:
//
//	  i   = (v - Min) * nbins / (Max - Min)
//	  ok  = 0 < i && i <= nbins
//	  bin = ceil(i)                 // 1-based
//
//	Bins are closed on the right and open on the left, (lo, hi]. A sample equal
//	to Min gives i == 0 and is therefore NOT counted. NaN samples fail the same
//	comparison and are dropped on the same code path as out-of-range samples.
//
// Accumulation:
//
//	Accumulate, AccumulateWithIndex and Accumulate2D add into caller-owned
//	count buffers and never reset them, so repeated calls build cumulative
//	histograms; this is how partial histograms (e.g. per shard) are merged.
//	A buffer shorter than nbins is not an error: the first len(buffer) bins
//	are filled, a warning is logged, and the call succeeds.
//
// Usage:
//
//	e, _ := hist.NewEdges(0, 10, 10)
//	counts := make([]int, e.N)
//	_ = hist.Accumulate(counts, samples, e)
//	_ = hist.Accumulate(counts, moreSamples, e) // cumulative
//
// Concurrency:
//
//	All functions are synchronous. Callers must serialise concurrent
//	accumulation into the same buffer, or give each goroutine its own buffer
//	and merge afterwards.
package hist

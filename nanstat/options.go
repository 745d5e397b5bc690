// SPDX-License-Identifier: MIT

// Package nanstat: functional configuration for reductions.
// Defaults are the single source of truth for zero-value behaviour;
// constructors panic only on nonsensical values (programmer error).
package nanstat

// Reduction axes.
const (
	// DimsAll reduces the whole array to a scalar.
	DimsAll = 0

	// DimsRows reduces along the first (row) axis: one value per column.
	DimsRows = 1

	// DimsCols reduces along the second (column) axis: one value per row.
	DimsCols = 2
)

// Defaults.
const (
	// DefaultDims is the axis used when WithDims is not given.
	DefaultDims = DimsAll

	// DefaultDrop keeps the reduced axis as a singleton dimension.
	DefaultDrop = false
)

const panicDimsNegative = "nanstat: WithDims: dims must be >= 0"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	dims int  // DefaultDims
	drop bool // DefaultDrop
}

// WithDims selects the reduction axis (DimsAll, DimsRows or DimsCols).
// Panics on negative values. Values above DimsCols are accepted here and
// rejected (reductions) or treated as DimsAll (order statistics) by the callee.
func WithDims(dims int) Option {
	if dims < 0 {
		panic(panicDimsNegative)
	}

	return func(o *Options) { o.dims = dims }
}

// WithDrop removes the reduced axis from axis reductions, returning a 1D array.
func WithDrop() Option {
	return func(o *Options) { o.drop = true }
}

// gatherOptions resolves opts over the documented defaults.
func gatherOptions(opts []Option) Options {
	o := Options{dims: DefaultDims, drop: DefaultDrop}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

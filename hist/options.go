// SPDX-License-Identifier: MIT

// Package hist: functional configuration for the accumulators.
package hist

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/nanstat/internal/logging"
)

// componentName tags every log entry emitted by this package.
const componentName = "hist"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger *zerolog.Logger // nil ⇒ logging.Default() on first warning
}

// WithLogger routes capacity warnings to l instead of the default stderr logger.
// Pass zerolog.Nop() to silence them.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = &l }
}

// gatherOptions applies opts over the zero configuration.
func gatherOptions(opts []Option) Options {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// log returns the configured logger tagged with the component name.
func (o *Options) log() zerolog.Logger {
	if o.logger == nil {
		return logging.Component(logging.Default(), componentName)
	}

	return logging.Component(*o.logger, componentName)
}

// warnTruncated reports that only capacity of nbins bins will be filled.
func (o *Options) warnTruncated(op, axis string, nbins, capacity int) {
	l := o.log()
	l.Warn().
		Str(logging.FieldOp, op).
		Str("axis", axis).
		Int("bins", nbins).
		Int("capacity", capacity).
		Msg("count buffer shorter than nbins; bins beyond capacity will not be filled")
}

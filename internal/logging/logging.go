// SPDX-License-Identifier: MIT

// Package logging builds the zerolog loggers shared by the hist package and
// the nanstat CLI. There is no package-level logger: every constructor
// returns a fresh value that callers pass down explicitly.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Field keys used across the module so log lines stay greppable.
const (
	FieldComponent = "component"
	FieldOp        = "op"
)

// New returns a JSON logger writing to w at the given level, with timestamps.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Console returns a human-readable logger on stderr.
func Console(level zerolog.Level) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr}, level)
}

// Default is the logger used when a caller does not supply one:
// console output on stderr, warnings and above.
func Default() zerolog.Logger {
	return Console(zerolog.WarnLevel)
}

// Component tags l with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str(FieldComponent, name).Logger()
}

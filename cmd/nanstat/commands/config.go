// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nanstat/internal/logging"
)

// Output formats understood by every command.
const (
	FormatTable    = "table"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// Defaults applied before the config file and flags.
const (
	DefaultBins   = 10
	DefaultSpan   = 3
	DefaultFormat = FormatTable
)

// DefaultPercentiles are reported by describe when none are configured.
var DefaultPercentiles = []float64{5, 25, 75, 95}

var (
	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrReadConfig is returned when the config file cannot be read or parsed.
	ErrReadConfig = errors.New("read config")
)

// Config is the YAML configuration shared by all commands.
//
//	histogram:
//	  min: 0
//	  max: 100
//	  bins: 20
//	movmean:
//	  span: 5
//	percentiles: [10, 50, 90]
//	format: markdown
type Config struct {
	Histogram   HistogramConfig `yaml:"histogram"`
	MovMean     MovMeanConfig   `yaml:"movmean"`
	Percentiles []float64       `yaml:"percentiles"`
	Format      string          `yaml:"format"`
}

// HistogramConfig configures the hist command. Nil Min or Max means the
// data minimum or maximum.
type HistogramConfig struct {
	Min  *float64 `yaml:"min"`
	Max  *float64 `yaml:"max"`
	Bins int      `yaml:"bins"`
}

// MovMeanConfig configures the movmean command.
type MovMeanConfig struct {
	Span int `yaml:"span"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Histogram:   HistogramConfig{Bins: DefaultBins},
		MovMean:     MovMeanConfig{Span: DefaultSpan},
		Percentiles: append([]float64(nil), DefaultPercentiles...),
		Format:      DefaultFormat,
	}
}

// LoadConfig reads path over DefaultConfig and validates the result.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	err = yaml.Unmarshal(raw, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrReadConfig, path, err)
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	if c.Histogram.Bins < 1 {
		return fmt.Errorf("%w: histogram.bins must be >= 1, got %d", ErrInvalidConfig, c.Histogram.Bins)
	}
	if c.Histogram.Min != nil && c.Histogram.Max != nil && !(*c.Histogram.Min < *c.Histogram.Max) {
		return fmt.Errorf("%w: histogram.min must be < histogram.max", ErrInvalidConfig)
	}
	if c.MovMean.Span < 1 {
		return fmt.Errorf("%w: movmean.span must be >= 1, got %d", ErrInvalidConfig, c.MovMean.Span)
	}
	for _, p := range c.Percentiles {
		if !(p >= 0 && p <= 100) {
			return fmt.Errorf("%w: percentile %v not in [0, 100]", ErrInvalidConfig, p)
		}
	}
	switch c.Format {
	case FormatTable, FormatCSV, FormatMarkdown:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}

	return nil
}

// Globals holds the persistent root flags.
type Globals struct {
	ConfigPath string
	Verbose    bool
}

// Logger returns the CLI logger: debug when verbose, warnings otherwise.
func (g *Globals) Logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if g.Verbose {
		level = zerolog.DebugLevel
	}

	return logging.Component(logging.Console(level), "cli")
}

// Config loads the configuration named by --config.
func (g *Globals) Config() (Config, error) {
	cfg, err := LoadConfig(g.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	log := g.Logger()
	log.Debug().Str("path", g.ConfigPath).Int("bins", cfg.Histogram.Bins).
		Int("span", cfg.MovMean.Span).Str("format", cfg.Format).Msg("config loaded")

	return cfg, nil
}

// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nanstat/array"
	"github.com/katalvlaran/nanstat/hist"
	"github.com/katalvlaran/nanstat/nanstat"
)

const (
	histCmdUse   = "hist [file]"
	histCmdShort = "Print an equal-width histogram of every value"
	histCmdLong  = `Bins are half-open (lower, upper]. Values equal to --min, outside the
range, or NaN are counted as excluded. Without --min/--max the data range is used,
so the data minimum itself is always excluded.`
	histMinFlag  = "min"
	histMaxFlag  = "max"
	histBinsFlag = "bins"
)

// NewHistCommand creates the hist subcommand.
func NewHistCommand(g *Globals) *cobra.Command {
	var (
		lo, hi float64
		bins   int
		format string
	)

	cmd := &cobra.Command{
		Use:   histCmdUse,
		Short: histCmdShort,
		Long:  histCmdLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, g, format, func(c *Config) {
				if cmd.Flags().Changed(histMinFlag) {
					c.Histogram.Min = &lo
				}
				if cmd.Flags().Changed(histMaxFlag) {
					c.Histogram.Max = &hi
				}
				if cmd.Flags().Changed(histBinsFlag) {
					c.Histogram.Bins = bins
				}
			})
			if err != nil {
				return err
			}

			return runHist(cmd, args, cfg, g.Logger())
		},
	}

	cmd.Flags().Float64Var(&lo, histMinFlag, 0, "lower edge (exclusive); default data minimum")
	cmd.Flags().Float64Var(&hi, histMaxFlag, 0, "upper edge (inclusive); default data maximum")
	cmd.Flags().IntVarP(&bins, histBinsFlag, "b", DefaultBins, "number of bins")
	addFormatFlag(cmd, &format)

	return cmd
}

func runHist(cmd *cobra.Command, args []string, cfg Config, log zerolog.Logger) error {
	a, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	lo, hi, err := histRange(a, cfg.Histogram)
	if err != nil {
		return err
	}

	e, err := hist.NewEdges(lo, hi, cfg.Histogram.Bins)
	if err != nil {
		return fmt.Errorf("histogram range [%v, %v]: %w", lo, hi, err)
	}

	counts, index, err := hist.CountsWithIndex(a.Data(), e, hist.WithLogger(log))
	if err != nil {
		return err
	}

	excluded := 0
	for _, b := range index {
		if b == 0 {
			excluded++
		}
	}
	log.Debug().Float64("min", e.Min).Float64("max", e.Max).Int("bins", e.N).
		Int("samples", len(index)).Int("excluded", excluded).Msg("hist")

	edges := e.Values()
	tbl := newTable(table.Row{"bin", "lower", "upper", "count"})
	for i, n := range counts {
		tbl.AppendRow(table.Row{i + 1, formatFloat(edges[i]), formatFloat(edges[i+1]), formatCount(n, cfg.Format)})
	}
	tbl.AppendFooter(table.Row{"", "", "binned", formatCount(len(index)-excluded, cfg.Format)})
	tbl.AppendFooter(table.Row{"", "", "excluded", formatCount(excluded, cfg.Format)})

	return renderTable(cmd.OutOrStdout(), tbl, cfg.Format)
}

// histRange resolves the configured edges, filling unset ones from the data.
func histRange(a *array.Dense[float64], hc HistogramConfig) (lo, hi float64, err error) {
	if hc.Min == nil || hc.Max == nil {
		l, h, err := nanstat.NanExtrema(a)
		if err != nil {
			return 0, 0, err
		}
		lo, hi = l.Scalar(), h.Scalar()
	}
	if hc.Min != nil {
		lo = *hc.Min
	}
	if hc.Max != nil {
		hi = *hc.Max
	}

	return lo, hi, nil
}

// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nanstat/array"
	"github.com/katalvlaran/nanstat/nanstat"
)

const (
	describeCmdUse        = "describe [file]"
	describeCmdShort      = "Print NaN-ignoring reductions and percentiles"
	describeDimsFlag      = "dims"
	describeDimsUsage     = "0 = whole array, 1 = per column, 2 = per row"
	describePercentile    = "percentile"
	describePercentileUse = "percentile to report (repeatable); overrides the config list"
)

// ErrInvalidDimsFlag is returned when --dims is not 0, 1 or 2.
var ErrInvalidDimsFlag = errors.New("--dims must be 0, 1 or 2")

type reducer func(*array.Dense[float64], ...nanstat.Option) (nanstat.Reduction, error)

type namedReducer struct {
	name string
	fn   reducer
}

// describeReducers lists the rows of the describe table in output order.
func describeReducers(percentiles []float64) []namedReducer {
	rs := []namedReducer{
		{"count", nanstat.NanCount[float64]},
		{"sum", nanstat.NanSum[float64]},
		{"mean", nanstat.NanMean[float64]},
		{"std", nanstat.NanStd[float64]},
		{"min", nanstat.NanMinimum[float64]},
		{"max", nanstat.NanMaximum[float64]},
		{"range", nanstat.NanRange[float64]},
		{"median", nanstat.NanMedian[float64]},
		{"mad", nanstat.NanMAD[float64]},
		{"aad", nanstat.NanAAD[float64]},
	}
	for _, p := range percentiles {
		rs = append(rs, namedReducer{
			name: "p" + formatFloat(p),
			fn: func(a *array.Dense[float64], opts ...nanstat.Option) (nanstat.Reduction, error) {
				return nanstat.NanPercentile(a, p, opts...)
			},
		})
	}

	return rs
}

// NewDescribeCommand creates the describe subcommand.
func NewDescribeCommand(g *Globals) *cobra.Command {
	var (
		dims        int
		percentiles []float64
		format      string
	)

	cmd := &cobra.Command{
		Use:   describeCmdUse,
		Short: describeCmdShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dims < nanstat.DimsAll || dims > nanstat.DimsCols {
				return ErrInvalidDimsFlag
			}

			cfg, err := resolveConfig(cmd, g, format, func(c *Config) {
				if cmd.Flags().Changed(describePercentile) {
					c.Percentiles = percentiles
				}
			})
			if err != nil {
				return err
			}

			return runDescribe(cmd, args, cfg, dims, g.Logger())
		},
	}

	cmd.Flags().IntVarP(&dims, describeDimsFlag, "d", nanstat.DimsAll, describeDimsUsage)
	cmd.Flags().Float64SliceVarP(&percentiles, describePercentile, "p", nil, describePercentileUse)
	addFormatFlag(cmd, &format)

	return cmd
}

func runDescribe(cmd *cobra.Command, args []string, cfg Config, dims int, log zerolog.Logger) error {
	a, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	rows, cols := a.Shape()
	log.Debug().Int("rows", rows).Int("cols", cols).Int("ndim", a.NDim()).Int("dims", dims).Msg("describe")

	prefix := "col"
	if dims == nanstat.DimsCols {
		prefix = "row"
	}

	opts := []nanstat.Option{nanstat.WithDims(dims), nanstat.WithDrop()}

	var tbl table.Writer
	for _, nr := range describeReducers(cfg.Percentiles) {
		res, err := nr.fn(a, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", nr.name, err)
		}

		vals := res.Float64s()
		if tbl == nil {
			tbl = newTable(axisHeader("statistic", prefix, len(vals), res.IsScalar()))
		}

		row := make(table.Row, 0, len(vals)+1)
		row = append(row, nr.name)
		for _, v := range vals {
			row = append(row, formatFloat(v))
		}
		tbl.AppendRow(row)
	}

	return renderTable(cmd.OutOrStdout(), tbl, cfg.Format)
}

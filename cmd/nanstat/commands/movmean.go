// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nanstat/nanstat"
)

const (
	movMeanCmdUse   = "movmean [file]"
	movMeanCmdShort = "Print the moving mean of a vector or matrix"
	movMeanCmdLong  = `The window is centred on each element and clipped at the edges; an even
span is rounded up to the next odd one. Matrices use a square span×span window.
NaN elements are ignored inside each window.`
	movMeanSpanFlag = "span"
)

// NewMovMeanCommand creates the movmean subcommand.
func NewMovMeanCommand(g *Globals) *cobra.Command {
	var (
		span   int
		format string
	)

	cmd := &cobra.Command{
		Use:   movMeanCmdUse,
		Short: movMeanCmdShort,
		Long:  movMeanCmdLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, g, format, func(c *Config) {
				if cmd.Flags().Changed(movMeanSpanFlag) {
					c.MovMean.Span = span
				}
			})
			if err != nil {
				return err
			}

			return runMovMean(cmd, args, cfg, g.Logger())
		},
	}

	cmd.Flags().IntVarP(&span, movMeanSpanFlag, "n", DefaultSpan, "window span")
	addFormatFlag(cmd, &format)

	return cmd
}

func runMovMean(cmd *cobra.Command, args []string, cfg Config, log zerolog.Logger) error {
	a, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	out, err := nanstat.MovingMean(a, cfg.MovMean.Span)
	if err != nil {
		return err
	}

	rows, cols := out.Shape()
	log.Debug().Int("rows", rows).Int("cols", cols).Int("span", cfg.MovMean.Span).Msg("movmean")

	first := "row"
	if out.NDim() == 1 {
		first = "index"
	}
	tbl := newTable(axisHeader(first, "c", cols, out.NDim() == 1))

	var row table.Row
	for i := 0; i < rows; i++ {
		vals, _ := out.Row(i)
		row = make(table.Row, 0, cols+1)
		row = append(row, i+1)
		for _, v := range vals {
			row = append(row, formatFloat(v))
		}
		tbl.AppendRow(row)
	}

	return renderTable(cmd.OutOrStdout(), tbl, cfg.Format)
}

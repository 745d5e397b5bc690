// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

const floatDigits = 6

// newTable creates a go-pretty table with the given header.
func newTable(header table.Row) table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.AppendHeader(header)

	return tbl
}

// renderTable writes tbl to w in the configured format.
func renderTable(w io.Writer, tbl table.Writer, format string) error {
	var out string
	switch format {
	case FormatCSV:
		out = tbl.RenderCSV()
	case FormatMarkdown:
		out = tbl.RenderMarkdown()
	default:
		out = tbl.Render()
	}

	_, err := fmt.Fprintln(w, out)

	return err
}

// formatFloat prints v with at most six decimals and no trailing zeros.
func formatFloat(v float64) string {
	return humanize.FtoaWithDigits(v, floatDigits)
}

// formatCount prints a count with thousands separators, except in CSV where
// the separator would collide with the field delimiter.
func formatCount(n int, format string) string {
	if format == FormatCSV {
		return strconv.Itoa(n)
	}

	return humanize.Comma(int64(n))
}

// axisHeader labels per-group result columns: "value" for a scalar,
// otherwise "<prefix>1".."<prefix>n".
func axisHeader(first, prefix string, n int, scalar bool) table.Row {
	row := table.Row{first}
	if scalar {
		return append(row, "value")
	}
	for i := 1; i <= n; i++ {
		row = append(row, prefix+strconv.Itoa(i))
	}

	return row
}

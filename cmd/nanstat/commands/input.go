// SPDX-License-Identifier: MIT

package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nanstat/array"
)

const maxLineBytes = 1 << 20

var (
	// ErrEmptyInput is returned when the input holds no data rows.
	ErrEmptyInput = errors.New("input has no data rows")

	// ErrRaggedInput is returned when rows differ in cell count.
	ErrRaggedInput = errors.New("rows have different lengths")

	// ErrBadCell is returned for a cell that is neither a number nor a missing marker.
	ErrBadCell = errors.New("cell is not a number")
)

// ReadMatrix parses a numeric table, one row per line.
// Lines containing a comma are split on commas, others on whitespace.
// Blank lines and lines starting with '#' are skipped. Empty cells and
// NaN/NA/null (any case) become NaN. A single row or a single column is
// returned as a 1D array, anything else as a rows×cols matrix.
func ReadMatrix(r io.Reader) (*array.Dense[float64], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	var data []float64
	rows, cols, lineNo := 0, -1, 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cells := splitCells(line)
		if cols >= 0 && len(cells) != cols {
			return nil, fmt.Errorf("line %d: %w: got %d cells, want %d", lineNo, ErrRaggedInput, len(cells), cols)
		}
		cols = len(cells)

		for _, cell := range cells {
			v, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if rows == 0 {
		return nil, ErrEmptyInput
	}
	if rows == 1 || cols == 1 {
		return array.FromSlice(data), nil
	}

	return array.FromRows(rows, cols, data)
}

func splitCells(line string) []string {
	if !strings.ContainsRune(line, ',') {
		return strings.Fields(line)
	}

	cells := strings.Split(line, ",")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}

	return cells
}

func parseCell(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "", "nan", "na", "null":
		return math.NaN(), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadCell, s)
	}

	return v, nil
}

// readInput reads the matrix from the file named by args[0], or from the
// command's stdin when no argument (or "-") is given.
func readInput(cmd *cobra.Command, args []string) (*array.Dense[float64], error) {
	if len(args) == 0 || args[0] == "-" {
		return ReadMatrix(cmd.InOrStdin())
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return ReadMatrix(f)
}

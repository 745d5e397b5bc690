// SPDX-License-Identifier: MIT

// Package main provides the entry point for the nanstat CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nanstat/cmd/nanstat/commands"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	globals := &commands.Globals{}

	rootCmd := &cobra.Command{
		Use:   "nanstat",
		Short: "NaN-ignoring statistics for numeric text tables",
		Long: `nanstat reads a numeric matrix (CSV or whitespace separated, NaN or empty
cells for missing values) from a file or stdin and summarises it.

Commands:
  describe  Reductions and percentiles, whole array or per column/row
  hist      Equal-width histogram of every value
  movmean   Moving mean with a clipped symmetric window`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globals.ConfigPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&globals.Verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(commands.NewDescribeCommand(globals))
	rootCmd.AddCommand(commands.NewHistCommand(globals))
	rootCmd.AddCommand(commands.NewMovMeanCommand(globals))
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nanstat %s\n", version)
		},
	}
}

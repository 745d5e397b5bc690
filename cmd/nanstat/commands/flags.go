// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"
)

const (
	formatFlag      = "format"
	formatFlagShort = "f"
	formatFlagUsage = "output format: table, csv or markdown"
)

// addFormatFlag registers --format on cmd.
func addFormatFlag(cmd *cobra.Command, dst *string) {
	cmd.Flags().StringVarP(dst, formatFlag, formatFlagShort, "", formatFlagUsage)
}

// resolveConfig loads the config file, lets override apply the flags the
// user set explicitly, and validates the merged result.
func resolveConfig(cmd *cobra.Command, g *Globals, format string, override func(*Config)) (Config, error) {
	cfg, err := g.Config()
	if err != nil {
		return Config{}, err
	}

	if cmd.Flags().Changed(formatFlag) {
		cfg.Format = format
	}
	if override != nil {
		override(&cfg)
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

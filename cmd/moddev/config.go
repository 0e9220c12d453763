// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"moddev/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `moddev config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage moddev configuration",
		Long: `Manage moddev configuration.

Configuration is read from the first of:
  - the file given with --config
  - $XDG_CONFIG_HOME/moddev/config.cue (or the OS config directory)
  - ./moddev.cue

Environment variables prefixed with MODDEV_ override file values,
for example MODDEV_MODS_ROOT or MODDEV_REPORT_FORMAT.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app)
		},
	})

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App) error {
	out := cmd.OutOrStdout()

	source := app.cfg.Path
	if source == "" {
		source = "(defaults)"
	}
	fmt.Fprintf(out, "// source: %s\n", source)
	fmt.Fprint(out, config.GenerateCUE(app.cfg.Config))
	return nil
}

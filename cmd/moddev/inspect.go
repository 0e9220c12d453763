// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"moddev/internal/config"
	"moddev/internal/report"
	"moddev/pkg/modfile"
	"moddev/pkg/types"

	"github.com/spf13/cobra"
)

// newInspectCommand creates the `moddev inspect` command.
func newInspectCommand(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect [path]",
		Short: "List mods in load order",
		Long: `List mods sorted by load order, then id.

Each row shows the load order, id, version, dependencies and entry script of
a mod. Mods sharing an id are reported as a warning; inspect never fails on
validation problems.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, app, format, args)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "output format: text or json (default from config)")

	return cmd
}

func runInspect(cmd *cobra.Command, app *App, formatFlag string, args []string) error {
	target := app.targetPath(args)
	format, err := app.reportFormat(formatFlag)
	if err != nil {
		return err
	}

	dirs := modfile.CollectModDirs(target)
	if len(dirs) == 0 {
		return &ExitError{Code: types.ExitUsage, Err: noModsFoundError(target)}
	}
	app.logger.Debug("mods discovered", "path", target, "count", len(dirs))

	var summaries []*modfile.ModSummary
	for _, dir := range dirs {
		if res := modfile.Validate(dir); res.Summary != nil {
			summaries = append(summaries, res.Summary)
		}
	}
	modfile.SortByLoadOrder(summaries)
	dups := modfile.DuplicateIDs(summaries)

	out := cmd.OutOrStdout()
	if format == config.ReportFormatJSON {
		return report.WriteInspectJSON(out, summaries, dups)
	}
	return report.WriteInspectText(out, summaries, dups, app.styles(out))
}

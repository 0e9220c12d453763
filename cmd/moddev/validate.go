// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"moddev/internal/config"
	"moddev/internal/issue"
	"moddev/internal/report"
	"moddev/internal/watch"
	"moddev/pkg/modfile"
	"moddev/pkg/types"

	"github.com/spf13/cobra"
)

type validateFlagValues struct {
	format string
	watch  bool
}

// newValidateCommand creates the `moddev validate` command.
func newValidateCommand(app *App) *cobra.Command {
	flags := &validateFlagValues{}

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate one mod or every mod under a root",
		Long: `Validate a mod directory, or every mod directly under a mods root.

A path containing mod.json is validated as a single mod. Any other directory
is treated as a mods root and each subdirectory with a mod.json is validated.
Dependencies between mods are checked once every mod has been validated.

Exits with status 1 when any error is found. Warnings never affect the exit
status.

Examples:
  moddev validate                       Validate the configured mods root
  moddev validate mods/my_mod           Validate a single mod
  moddev validate mods --format json    Emit a JSON report
  moddev validate mods --watch          Re-validate whenever a mod file changes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, app, flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "report format: text or json (default from config)")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "re-validate when mod files change")

	return cmd
}

func runValidate(cmd *cobra.Command, app *App, flags *validateFlagValues, args []string) error {
	target := app.targetPath(args)
	format, err := app.reportFormat(flags.format)
	if err != nil {
		return err
	}

	if flags.watch {
		return runValidateWatch(cmd, app, target, format)
	}

	code, err := app.validateOnce(cmd.OutOrStdout(), target, format)
	if err != nil {
		return err
	}
	if !code.IsSuccess() {
		if app.verbose {
			fmt.Fprintln(cmd.ErrOrStderr())
			app.renderGuidance(cmd.ErrOrStderr(), issue.ValidationFailedId)
		}
		return &ExitError{Code: code}
	}
	return nil
}

// validateOnce validates every mod at target and writes the report to w. It
// returns the exit code the findings call for.
func (a *App) validateOnce(w io.Writer, target string, format config.ReportFormat) (types.ExitCode, error) {
	dirs := modfile.CollectModDirs(target)
	if len(dirs) == 0 {
		return types.ExitUsage, &ExitError{Code: types.ExitUsage, Err: noModsFoundError(target)}
	}
	a.logger.Debug("mods discovered", "path", target, "count", len(dirs))

	results := modfile.ValidateAll(dirs)
	for _, res := range results {
		a.logger.Debug("mod validated",
			"root", res.Root,
			"errors", res.Count(modfile.LevelError),
			"warnings", res.Count(modfile.LevelWarning))
	}

	var err error
	if format == config.ReportFormatJSON {
		err = report.WriteValidationJSON(w, results)
	} else {
		err = report.WriteValidationText(w, results, a.styles(w))
	}
	if err != nil {
		return types.ExitUsage, err
	}
	return types.ForErrorCount(report.Tally(results).Errors), nil
}

// runValidateWatch validates once, then re-validates after every debounced batch
// of changes under target until the command context is cancelled. Validation
// errors never stop the loop.
func runValidateWatch(cmd *cobra.Command, app *App, target string, format config.ReportFormat) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if _, err := app.validateOnce(out, target, format); err != nil {
		return err
	}

	debounce, err := app.cfg.Watch.DebounceDuration()
	if err != nil {
		return &ExitError{Code: types.ExitUsage, Err: err}
	}

	w, err := watch.New(watch.Config{
		Ignore:   app.cfg.Watch.Ignore,
		Debounce: debounce,
		BaseDir:  target,
		Logger:   app.logger,
		OnChange: func(_ context.Context, changed []string) error {
			app.logger.Debug("change detected", "files", changed)
			fmt.Fprintf(out, "\n%s %d file(s) changed, re-validating\n\n", CmdStyle.Render("→"), len(changed))
			if _, runErr := app.validateOnce(out, target, format); runErr != nil {
				fmt.Fprintln(errOut, formatErrorForDisplay(runErr, app.verbose))
			}
			return nil
		},
	})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	fmt.Fprintf(out, "\n%s Watching %s for changes (Ctrl+C to stop)\n", CmdStyle.Render("→"), target)
	return w.Run(cmd.Context())
}

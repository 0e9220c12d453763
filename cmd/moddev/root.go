// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for moddev.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"moddev/internal/issue"
	"moddev/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlagValues holds the persistent flags shared by every subcommand.
type rootFlagValues struct {
	verbose    bool
	configPath string
	noColor    bool
}

// NewRootCommand builds the moddev command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlagValues{}

	rootCmd := &cobra.Command{
		Use:   "moddev",
		Short: "Validate, inspect and scaffold game mods",
		Long: TitleStyle.Render("moddev") + SubtitleStyle.Render(" - Validate, inspect and scaffold game mods") + `

moddev checks mod manifests and their content files: consumable JSON,
joker/tag/boss DSL files and the mixins they share. It reports every problem
it finds and never modifies a mod.

` + SubtitleStyle.Render("Examples:") + `
  moddev validate                 Validate every mod under the mods root
  moddev validate mods/my_mod     Validate a single mod
  moddev validate --watch         Re-validate whenever a mod file changes
  moddev inspect                  List mods in load order
  moddev init my_mod              Create a new mod
  moddev config show              Show the resolved configuration`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd.Context(), flags)
		},
	}
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging and extended error guidance")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/moddev/config.cue)")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable styled output")

	rootCmd.AddCommand(newValidateCommand(app))
	rootCmd.AddCommand(newInspectCommand(app))
	rootCmd.AddCommand(newInitCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits the process with the resulting exit code.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	); err != nil {
		os.Exit(int(exitCodeFor(err)))
	}
}

// exitCodeFor maps a command error to the process exit code. Errors that do
// not carry a code are usage errors.
func exitCodeFor(err error) types.ExitCode {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return types.ExitUsage
}

// handleError prints a command error. An ExitError without a cause has already
// been reported by the command and prints nothing.
func (a *App) handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		fmt.Fprintln(w, formatErrorForDisplay(err, a.verbose))
		if a.verbose && ae.IssueID != 0 {
			fmt.Fprintln(w)
			a.renderGuidance(w, ae.IssueID)
		}
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ErrorStyle.Render("Error: ") + ae.Format(verboseMode)
	}
	return ErrorStyle.Render("Error: ") + err.Error()
}

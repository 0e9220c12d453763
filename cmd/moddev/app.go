// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"moddev/internal/config"
	"moddev/internal/issue"
	"moddev/internal/report"
	"moddev/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared state. Every command handler receives
	// the same App; the configuration is resolved once per invocation by the
	// root command's PersistentPreRunE.
	App struct {
		Config config.Provider
		stdout io.Writer
		stderr io.Writer
		logger *log.Logger

		cfg     *config.Loaded
		verbose bool
		color   bool
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	logger := log.NewWithOptions(deps.Stderr, log.Options{
		Prefix: config.AppName,
		Level:  log.WarnLevel,
	})

	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		logger: logger,
		cfg:    &config.Loaded{Config: config.DefaultConfig()},
		color:  true,
	}
}

// init loads the configuration and applies it together with the global flags.
// Flags win over configuration values.
func (a *App) init(ctx context.Context, flags *rootFlagValues) error {
	loaded, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		return &ExitError{Code: types.ExitUsage, Err: configLoadError(flags.configPath, err)}
	}
	a.cfg = loaded

	a.verbose = flags.verbose || loaded.UI.Verbose
	a.color = loaded.UI.Color && !flags.noColor
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	if loaded.Path != "" {
		a.logger.Debug("configuration loaded", "path", loaded.Path)
	} else {
		a.logger.Debug("no configuration file found, using defaults")
	}
	return nil
}

// styles returns report styles for w honoring the color settings.
func (a *App) styles(w io.Writer) report.Styles {
	return report.NewStyles(w, a.color)
}

// targetPath resolves the path argument of validate and inspect, falling back to
// the configured mods root.
func (a *App) targetPath(args []string) string {
	target := a.cfg.ModsRoot
	if len(args) > 0 {
		target = args[0]
	}
	if abs, err := filepath.Abs(target); err == nil {
		return abs
	}
	return target
}

// reportFormat resolves the --format flag against the configured default.
func (a *App) reportFormat(flag string) (config.ReportFormat, error) {
	format := a.cfg.Report.Format
	if flag != "" {
		format = config.ReportFormat(flag)
	}
	if ok, errs := format.IsValid(); !ok {
		return "", &ExitError{Code: types.ExitUsage, Err: errors.Join(errs...)}
	}
	return format, nil
}

// renderGuidance writes the catalog entry for id to w. Rendering failures are
// logged and otherwise ignored.
func (a *App) renderGuidance(w io.Writer, id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render("")
	if err != nil {
		a.logger.Debug("render guidance", "issue", id, "err", err)
		return
	}
	fmt.Fprint(w, rendered)
}

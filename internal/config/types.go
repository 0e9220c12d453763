// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	// ReportFormatText renders findings as a human-readable report.
	ReportFormatText ReportFormat = "text"
	// ReportFormatJSON renders findings as a single JSON document.
	ReportFormatJSON ReportFormat = "json"
)

var (
	// ErrInvalidReportFormat is returned when a ReportFormat value is not recognized.
	ErrInvalidReportFormat = errors.New("invalid report format")
	// ErrInvalidDebounce is returned when watch.debounce is not a positive duration.
	ErrInvalidDebounce = errors.New("invalid watch debounce")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ReportFormat selects how validate and inspect print their results.
	ReportFormat string

	// InvalidReportFormatError is returned when a ReportFormat is not recognized.
	InvalidReportFormatError struct {
		Value ReportFormat
	}

	// InvalidConfigError collects the field errors of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// ModsRoot is the default path for validate, inspect and init.
		ModsRoot string `json:"mods_root" mapstructure:"mods_root"`
		// UI configures terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Report configures result rendering.
		Report ReportConfig `json:"report" mapstructure:"report"`
		// Watch configures `validate --watch`.
		Watch WatchConfig `json:"watch" mapstructure:"watch"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		// Verbose enables debug logging and extended error guidance.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// Color enables styled output.
		Color bool `json:"color" mapstructure:"color"`
	}

	// ReportConfig configures result rendering.
	ReportConfig struct {
		Format ReportFormat `json:"format" mapstructure:"format"`
	}

	// WatchConfig configures the file watcher.
	WatchConfig struct {
		// Debounce is a Go duration string such as "500ms".
		Debounce string `json:"debounce" mapstructure:"debounce"`
		// Ignore lists doublestar patterns excluded from watching.
		Ignore []string `json:"ignore" mapstructure:"ignore"`
	}
)

// Error implements the error interface.
func (e *InvalidReportFormatError) Error() string {
	return fmt.Sprintf("invalid report format %q (valid: text, json)", e.Value)
}

// Unwrap returns ErrInvalidReportFormat for errors.Is() compatibility.
func (e *InvalidReportFormatError) Unwrap() error { return ErrInvalidReportFormat }

// String returns the string representation of the ReportFormat.
func (f ReportFormat) String() string { return string(f) }

// IsValid reports whether f is a known format.
func (f ReportFormat) IsValid() (bool, []error) {
	switch f {
	case ReportFormatText, ReportFormatJSON:
		return true, nil
	default:
		return false, []error{&InvalidReportFormatError{Value: f}}
	}
}

// DebounceDuration parses Debounce.
func (w WatchConfig) DebounceDuration() (time.Duration, error) {
	d, err := time.ParseDuration(w.Debounce)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDebounce, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrInvalidDebounce, w.Debounce)
	}
	return d, nil
}

// IsValid checks the values that the schema cannot see, such as those coming
// from environment overrides.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Report.Format.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if _, err := c.Watch.DebounceDuration(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ModsRoot: "mods",
		UI: UIConfig{
			Verbose: false,
			Color:   true,
		},
		Report: ReportConfig{
			Format: ReportFormatText,
		},
		Watch: WatchConfig{
			Debounce: "500ms",
			Ignore:   []string{"**/.git/**"},
		},
	}
}

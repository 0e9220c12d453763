// SPDX-License-Identifier: MPL-2.0

// Package types holds small value types shared by the command layer.
package types

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// ExitSuccess means the command completed and found no errors.
	ExitSuccess ExitCode = 0
	// ExitValidationFailed means validation recorded at least one error.
	// Warnings alone never produce it.
	ExitValidationFailed ExitCode = 1
	// ExitUsage means the command could not do its work: no mods were found,
	// a scaffold target was refused, or the arguments were invalid.
	ExitUsage ExitCode = 2
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents a process exit status code in the range 0-255.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside 0-255.
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is outside the valid range.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess returns true for ExitSuccess.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// String returns the decimal representation.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

// ForErrorCount maps the number of validation errors to an exit code.
func ForErrorCount(n int) ExitCode {
	if n > 0 {
		return ExitValidationFailed
	}
	return ExitSuccess
}

// SPDX-License-Identifier: MPL-2.0

package modfile

import (
	"fmt"
	"slices"
)

const (
	// LevelError marks a structural or contract violation. Any error makes the
	// validation run fail.
	LevelError Level = iota + 1
	// LevelWarning marks content that is legal but suspicious. Warnings never
	// affect the exit status.
	LevelWarning
)

type (
	// Level is the severity of an Issue.
	Level uint8

	// Issue is a single validation finding. Issues are appended to a
	// ValidationResult and never modified afterwards.
	//
	//nolint:errname // a finding, not a Go error
	Issue struct {
		Level   Level  `json:"level"`
		Message string `json:"message"`
		// Path is the file the finding refers to. Empty when not file-specific.
		Path string `json:"path,omitempty"`
	}

	// ModSummary is the best-effort description of one mod directory. Missing or
	// invalid manifest values are replaced by defaults so that inspection and
	// cross-mod checks never need to special-case a failed mod.
	ModSummary struct {
		Root         string   `json:"root"`
		ModID        string   `json:"id"`
		Name         string   `json:"name"`
		Version      string   `json:"version"`
		LoadOrder    int64    `json:"load_order"`
		Dependencies []string `json:"dependencies"`
		Entry        string   `json:"entry,omitempty"`
		ContentRoot  string   `json:"content_root,omitempty"`
	}

	// ValidationResult collects the findings for one mod directory. Summary is nil
	// only when the manifest is missing or cannot be parsed.
	ValidationResult struct {
		Root    string      `json:"root"`
		Issues  []Issue     `json:"issues"`
		Summary *ModSummary `json:"summary,omitempty"`
	}
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// NewValidationResult returns an empty result for the mod at root.
func NewValidationResult(root string) *ValidationResult {
	return &ValidationResult{Root: root, Issues: []Issue{}}
}

// Add appends a finding.
func (r *ValidationResult) Add(level Level, message, path string) {
	r.Issues = append(r.Issues, Issue{Level: level, Message: message, Path: path})
}

// Errorf appends an error-level finding with a formatted message.
func (r *ValidationResult) Errorf(path, format string, args ...any) {
	r.Add(LevelError, fmt.Sprintf(format, args...), path)
}

// Warnf appends a warning-level finding with a formatted message.
func (r *ValidationResult) Warnf(path, format string, args ...any) {
	r.Add(LevelWarning, fmt.Sprintf(format, args...), path)
}

// HasErrors reports whether any error-level finding was recorded.
func (r *ValidationResult) HasErrors() bool {
	return slices.ContainsFunc(r.Issues, func(i Issue) bool { return i.Level == LevelError })
}

// Count returns the number of findings at the given level.
func (r *ValidationResult) Count(level Level) int {
	n := 0
	for _, i := range r.Issues {
		if i.Level == level {
			n++
		}
	}
	return n
}

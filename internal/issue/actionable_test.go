// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "find mods"},
			expected: "failed to find mods",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "find mods", Resource: "./mods"},
			expected: "failed to find mods: ./mods",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load config",
				Resource:  "moddev.cue",
				Cause:     errors.New("report.format: conflicting values"),
			},
			expected: "failed to load config: moddev.cue: report.format: conflicting values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	t.Parallel()

	cause := errors.New("specific error")
	wrapped := &ActionableError{Operation: "scaffold mod", Cause: cause}

	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if (&ActionableError{Operation: "x"}).Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	root := errors.New("permission denied")
	err := &ActionableError{
		Operation:   "scaffold mod",
		Resource:    "mods/demo",
		Suggestions: []string{"Pick a different mod id", "Use --force"},
		Cause:       fmt.Errorf("mkdir: %w", root),
	}

	plain := err.Format(false)
	for _, want := range []string{"failed to scaffold mod: mods/demo", "• Pick a different mod id", "• Use --force"} {
		if !strings.Contains(plain, want) {
			t.Errorf("Format(false) missing %q:\n%s", want, plain)
		}
	}
	if strings.Contains(plain, "Error chain") {
		t.Errorf("Format(false) should not include the error chain:\n%s", plain)
	}

	verbose := err.Format(true)
	for _, want := range []string{"Error chain:", "1. mkdir: permission denied", "2. permission denied"} {
		if !strings.Contains(verbose, want) {
			t.Errorf("Format(true) missing %q:\n%s", want, verbose)
		}
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without an operation should return nil")
	}

	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("find mods").
		WithResource("./mods").
		WithSuggestion("one").
		WithSuggestions("two", "three").
		WithIssue(NoModsFoundId).
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build() returned nil")
	}
	if err.Operation != "find mods" || err.Resource != "./mods" {
		t.Errorf("unexpected error: %+v", err)
	}
	if len(err.Suggestions) != 3 {
		t.Errorf("expected 3 suggestions, got %v", err.Suggestions)
	}
	if !errors.Is(err, cause) {
		t.Error("expected the cause to be wrapped")
	}
	if g := err.Guidance(); g == nil || g.Id() != NoModsFoundId {
		t.Errorf("Guidance() = %v, want the NoModsFound entry", g)
	}
}

func TestWrapWithContext(t *testing.T) {
	t.Parallel()

	if WrapWithContext(nil, "load config", "x") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}
	err := WrapWithContext(errors.New("bad"), "load config", "moddev.cue")
	if err.Error() != "failed to load config: moddev.cue: bad" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.Guidance() != nil {
		t.Error("expected no guidance without an issue id")
	}
}

// SPDX-License-Identifier: MPL-2.0

package modfile

import (
	"path/filepath"
	"strings"
	"testing"

	"moddev/internal/testutil"
)

// writeFiles creates files under dir. Keys are slash-separated relative paths.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	testutil.WriteFiles(t, dir, files)
}

// newMod creates root/id with the given files and returns the mod directory.
func newMod(t *testing.T, root, id string, files map[string]string) string {
	t.Helper()

	dir := filepath.Join(root, id)
	testutil.MustMkdirAll(t, dir)
	writeFiles(t, dir, files)
	return dir
}

func manifestFor(id string) string {
	return `{"meta": {"id": "` + id + `", "name": "` + id + `", "version": "1.0.0"}}`
}

func messages(r *ValidationResult, level Level) []string {
	var out []string
	for _, i := range r.Issues {
		if i.Level == level {
			out = append(out, i.Message)
		}
	}
	return out
}

func countContaining(r *ValidationResult, level Level, substr string) int {
	n := 0
	for _, msg := range messages(r, level) {
		if strings.Contains(msg, substr) {
			n++
		}
	}
	return n
}

func assertClean(t *testing.T, r *ValidationResult) {
	t.Helper()

	if len(r.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", r.Issues)
	}
}

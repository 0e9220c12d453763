// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"moddev/internal/testutil"
	"moddev/pkg/types"
)

func TestInspectSortsByLoadOrder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeMod(t, root, "alpha", 20)
	writeMod(t, root, "beta", 5, "alpha")
	writeMod(t, root, "gamma", 5)

	stdout, _, err := runCLI(t, stubProvider{}, "inspect", root)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header, rule and 3 rows, got:\n%s", stdout)
	}
	var ids []string
	for _, line := range lines[2:] {
		ids = append(ids, strings.Fields(line)[1])
	}
	if got := strings.Join(ids, " "); got != "beta gamma alpha" {
		t.Errorf("row order = %q, want %q", got, "beta gamma alpha")
	}
	if !strings.Contains(lines[2], " alpha ") {
		t.Errorf("expected beta's dependency column to list alpha: %q", lines[2])
	}
}

func TestInspectDuplicateIDs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeMod(t, root, "one", 0)
	writeMod(t, root, "two", 0)
	// A mod whose directory differs from meta.id still gets a summary.
	testutil.MustWriteFile(t, filepath.Join(root, "copy", "mod.json"),
		`{"meta":{"id":"one","name":"One","version":"2.0.0"},"load_order":1}`)

	stdout, _, err := runCLI(t, stubProvider{}, "inspect", root)
	if err != nil {
		t.Fatalf("duplicates must not fail inspect: %v", err)
	}
	if !strings.Contains(stdout, "warning: duplicate mod ids detected: one") {
		t.Errorf("expected duplicate warning:\n%s", stdout)
	}
}

func TestInspectJSON(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeMod(t, root, "base", 3)

	stdout, _, err := runCLI(t, stubProvider{}, "inspect", root, "--format", "json")
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	var doc struct {
		Mods []struct {
			ID        string `json:"id"`
			LoadOrder int    `json:"load_order"`
		} `json:"mods"`
		Duplicates []string `json:"duplicates"`
	}
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if len(doc.Mods) != 1 || doc.Mods[0].ID != "base" || doc.Mods[0].LoadOrder != 3 {
		t.Errorf("unexpected mods: %+v", doc.Mods)
	}
	if len(doc.Duplicates) != 0 {
		t.Errorf("unexpected duplicates: %v", doc.Duplicates)
	}
}

func TestInspectNoMods(t *testing.T) {
	t.Parallel()

	_, _, err := runCLI(t, stubProvider{}, "inspect", t.TempDir())
	if code := exitCode(t, err); code != types.ExitUsage {
		t.Errorf("exit code = %d, want %d", code, types.ExitUsage)
	}
}

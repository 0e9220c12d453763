// SPDX-License-Identifier: MPL-2.0

package modfile

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
)

func TestIsSafeRelative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"scripts/main.lua", true},
		{"content", true},
		{"content/", true},
		{"./content", true},
		{"", false},
		{"/etc/passwd", false},
		{"../other", false},
		{"content/../../x", false},
		{"a//b", false},
		{"a/ /b", false},
		{"/", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := IsSafeRelative(tt.path); got != tt.want {
				t.Errorf("IsSafeRelative(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"ok.json":       `{"n": 3, "f": 1.5}`,
		"broken.json":   `{"n": `,
		"trailing.json": `{} {}`,
	})

	v, err := LoadJSON(filepath.Join(dir, "ok.json"))
	if err != nil {
		t.Fatalf("LoadJSON(ok.json) error: %v", err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", v)
	}
	if _, isNumber := obj["n"].(json.Number); !isNumber {
		t.Errorf("expected json.Number for n, got %T", obj["n"])
	}
	if _, ok := asInteger(obj["n"]); !ok {
		t.Error("expected n to decode as integer")
	}
	if _, ok := asInteger(obj["f"]); ok {
		t.Error("expected f to be rejected as integer")
	}

	for _, name := range []string{"broken.json", "trailing.json"} {
		if _, err := LoadJSON(filepath.Join(dir, name)); !errors.Is(err, ErrParse) {
			t.Errorf("LoadJSON(%s) error = %v, want ErrParse", name, err)
		}
	}

	if _, err := LoadJSON(filepath.Join(dir, "missing.json")); !errors.Is(err, ErrRead) {
		t.Errorf("LoadJSON(missing.json) error = %v, want ErrRead", err)
	}
}

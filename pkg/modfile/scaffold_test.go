// SPDX-License-Identifier: MPL-2.0

package modfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScaffold_PassesValidation(t *testing.T) {
	t.Parallel()

	for _, tmpl := range []Template{TemplateLua, TemplateData} {
		t.Run(string(tmpl), func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			dir, err := Scaffold(ScaffoldOptions{Root: root, ModID: "lucky_charm", Template: tmpl})
			if err != nil {
				t.Fatalf("Scaffold() error: %v", err)
			}
			if dir != filepath.Join(root, "lucky_charm") {
				t.Errorf("mod dir = %q", dir)
			}

			res := Validate(dir)
			assertClean(t, res)
			if res.Summary.Name != "Lucky Charm" || res.Summary.Version != "0.1.0" {
				t.Errorf("unexpected summary: %+v", res.Summary)
			}

			_, statErr := os.Stat(filepath.Join(dir, "scripts", "main.lua"))
			if hasScript := statErr == nil; hasScript != (tmpl == TemplateLua) {
				t.Errorf("script present = %v for template %s", hasScript, tmpl)
			}
		})
	}
}

func TestScaffold_LuaScriptMentionsMeta(t *testing.T) {
	t.Parallel()

	dir, err := Scaffold(ScaffoldOptions{Root: t.TempDir(), ModID: "demo"})
	if err != nil {
		t.Fatalf("Scaffold() error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "scripts", "main.lua"))
	if err != nil {
		t.Fatalf("read script: %v", err)
	}
	script := string(data)
	for _, want := range []string{`id = "demo"`, `name = "Demo"`, `register_hook("OnShopEnter"`} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q:\n%s", want, script)
		}
	}
}

func TestScaffold_Refusals(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{"taken/existing.txt": "x"})

	if _, err := Scaffold(ScaffoldOptions{Root: root, ModID: "bad id"}); !errors.Is(err, ErrInvalidModID) {
		t.Errorf("expected ErrInvalidModID, got %v", err)
	}
	if _, err := Scaffold(ScaffoldOptions{Root: root, ModID: "taken"}); !errors.Is(err, ErrTargetNotEmpty) {
		t.Errorf("expected ErrTargetNotEmpty, got %v", err)
	}
	if _, err := Scaffold(ScaffoldOptions{Root: root, ModID: "taken", Force: true}); err != nil {
		t.Errorf("expected --force to succeed, got %v", err)
	}
	if _, err := Scaffold(ScaffoldOptions{Root: root, ModID: "other", Template: "rust"}); !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"lucky_charm": "Lucky Charm",
		"demo":        "Demo",
		"mixed_CASE":  "Mixed Case",
	}
	for in, want := range tests {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}

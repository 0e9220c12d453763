// SPDX-License-Identifier: MPL-2.0

package modfile

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// TemplateLua scaffolds a mod with a Lua entry script.
	TemplateLua Template = "lua"
	// TemplateData scaffolds a data-only mod with a sample tarot.
	TemplateData Template = "data"

	scaffoldVersion = "0.1.0"
	scaffoldRoot    = "content"
	scaffoldEntry   = "scripts/main.lua"

	// File and directory permissions for scaffolded output.
	dirPerm  = 0o755
	filePerm = 0o644
)

var (
	// ErrInvalidModID is returned when a scaffold id is not a legal mod id.
	ErrInvalidModID = errors.New("mod id must match [A-Za-z0-9_-]+")
	// ErrTargetNotEmpty is returned when the scaffold target already has files
	// and Force is not set.
	ErrTargetNotEmpty = errors.New("target exists and is not empty")
	// ErrUnknownTemplate is returned for a template other than lua or data.
	ErrUnknownTemplate = errors.New("unknown template")
)

type (
	// Template selects the scaffold layout.
	Template string

	// ScaffoldOptions configures Scaffold.
	ScaffoldOptions struct {
		// Root is the mods root; the mod is created at Root/ModID.
		Root     string
		ModID    string
		Template Template
		// Force allows writing into a non-empty directory.
		Force bool
	}

	scaffoldManifest struct {
		Meta      scaffoldMeta    `json:"meta"`
		Content   scaffoldContent `json:"content"`
		LoadOrder int             `json:"load_order"`
		Entry     string          `json:"entry,omitempty"`
	}

	scaffoldMeta struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Version string `json:"version"`
	}

	scaffoldContent struct {
		Root string `json:"root"`
	}

	sampleBlock struct {
		Trigger    string           `json:"trigger"`
		Conditions []string         `json:"conditions"`
		Effects    []map[string]int `json:"effects"`
	}

	sampleConsumable struct {
		ID      string        `json:"id"`
		Name    string        `json:"name"`
		Kind    string        `json:"kind"`
		Effects []sampleBlock `json:"effects"`
	}
)

const luaTemplate = `mod_meta = {
  id = "%[1]s",
  name = "%[2]s",
  version = "%[3]s"
}

rulatro.log("mod loaded")

rulatro.register_hook("OnShopEnter", function(ctx)
  return {
    effects = {
      {
        block = {
          trigger = "OnShopEnter",
          conditions = { "Always" },
          effects = { { AddMoney = 1 } }
        }
      }
    }
  }
end)
`

// ParseTemplate maps a template name to a Template.
func ParseTemplate(name string) (Template, error) {
	switch t := Template(strings.ToLower(strings.TrimSpace(name))); t {
	case TemplateLua, TemplateData:
		return t, nil
	default:
		return "", fmt.Errorf("%w '%s' (expected lua or data)", ErrUnknownTemplate, name)
	}
}

// DisplayName derives a human-readable mod name from its id.
func DisplayName(modID string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(modID, "_", " "))
}

// Scaffold creates a new mod directory that passes Validate. It returns the
// created mod directory.
func Scaffold(opts ScaffoldOptions) (string, error) {
	modID := strings.TrimSpace(opts.ModID)
	if !IsValidModID(modID) {
		return "", ErrInvalidModID
	}
	tmpl, err := ParseTemplate(cmp.Or(string(opts.Template), string(TemplateLua)))
	if err != nil {
		return "", err
	}

	modDir := filepath.Join(opts.Root, modID)
	if !opts.Force {
		if entries, err := os.ReadDir(modDir); err == nil && len(entries) > 0 {
			return "", fmt.Errorf("%w: %s (use --force to continue)", ErrTargetNotEmpty, modDir)
		}
	}

	contentDir := filepath.Join(modDir, scaffoldRoot)
	if err := os.MkdirAll(contentDir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", contentDir, err)
	}

	name := DisplayName(modID)
	manifest := scaffoldManifest{
		Meta:    scaffoldMeta{ID: modID, Name: name, Version: scaffoldVersion},
		Content: scaffoldContent{Root: scaffoldRoot},
	}

	switch tmpl {
	case TemplateLua:
		manifest.Entry = scaffoldEntry
		script := filepath.Join(modDir, filepath.FromSlash(scaffoldEntry))
		if err := os.MkdirAll(filepath.Dir(script), dirPerm); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", filepath.Dir(script), err)
		}
		body := fmt.Sprintf(luaTemplate, modID, name, scaffoldVersion)
		if err := os.WriteFile(script, []byte(body), filePerm); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", script, err)
		}
	case TemplateData:
		tarots := []sampleConsumable{{
			ID:   modID + "_gift",
			Name: "Gift",
			Kind: "Tarot",
			Effects: []sampleBlock{{
				Trigger:    "OnUse",
				Conditions: []string{"Always"},
				Effects:    []map[string]int{{"AddMoney": 3}},
			}},
		}}
		if err := writeJSON(filepath.Join(contentDir, "tarots.json"), tarots); err != nil {
			return "", err
		}
	}

	if err := writeJSON(filepath.Join(modDir, ManifestFile), manifest); err != nil {
		return "", err
	}
	return modDir, nil
}

// writeJSON writes v as indented JSON with a trailing newline.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

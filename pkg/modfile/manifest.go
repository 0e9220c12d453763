// SPDX-License-Identifier: MPL-2.0

package modfile

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	defaultVersion = "0.0.0"
)

// manifestCheck carries the state of one Validate call.
type manifestCheck struct {
	dir    string
	path   string
	result *ValidationResult
	doc    map[string]any
	sum    ModSummary
}

// Validate checks the mod at modDir: its manifest, its entry script and, when
// declared, its content directory.
//
// A missing or unparsable manifest yields a single error and no summary. In all
// other cases every check runs, findings accumulate, and the result carries a
// summary built from the best available values.
func Validate(modDir string) *ValidationResult {
	result := NewValidationResult(modDir)
	manifestPath := filepath.Join(modDir, ManifestFile)

	if _, err := os.Stat(manifestPath); errors.Is(err, fs.ErrNotExist) {
		result.Errorf(manifestPath, "missing %s", ManifestFile)
		return result
	}
	data, err := LoadJSON(manifestPath)
	if err != nil {
		result.Add(LevelError, err.Error(), manifestPath)
		return result
	}
	doc, ok := asObject(data)
	if !ok {
		result.Errorf(manifestPath, "manifest root must be a JSON object")
		return result
	}

	c := &manifestCheck{
		dir:    modDir,
		path:   manifestPath,
		result: result,
		doc:    doc,
		sum:    ModSummary{Root: modDir, Dependencies: []string{}},
	}
	c.meta()
	c.loadOrder()
	c.dependencies()
	c.entry()
	c.content()
	c.overrides()

	sum := c.sum
	result.Summary = &sum
	return result
}

func (c *manifestCheck) meta() {
	dirName := filepath.Base(c.dir)

	meta, ok := asObject(c.doc["meta"])
	if !ok {
		c.result.Errorf(c.path, "manifest.meta must be an object")
		meta = map[string]any{}
	}

	id := stringField(meta, "id")
	name := stringField(meta, "name")
	version := stringField(meta, "version")

	switch {
	case id == "":
		c.result.Errorf(c.path, "meta.id is required")
	case !IsValidModID(id):
		c.result.Errorf(c.path, "meta.id must match [A-Za-z0-9_-]+")
	}
	if name == "" {
		c.result.Errorf(c.path, "meta.name is required")
	}
	if version == "" {
		c.result.Errorf(c.path, "meta.version is required")
	}
	if id != "" && dirName != id {
		c.result.Errorf(c.path, "directory name '%s' does not match meta.id '%s'", dirName, id)
	}

	c.sum.ModID = cmp.Or(id, dirName)
	c.sum.Name = cmp.Or(name, dirName)
	c.sum.Version = cmp.Or(version, defaultVersion)
}

func (c *manifestCheck) loadOrder() {
	raw, present := c.doc["load_order"]
	if !present {
		return
	}
	order, ok := asInteger(raw)
	if !ok {
		c.result.Errorf(c.path, "load_order must be an integer")
		return
	}
	c.sum.LoadOrder = order
}

func (c *manifestCheck) dependencies() {
	deps, ok := asArray(c.doc["dependencies"])
	if !ok {
		c.result.Errorf(c.path, "dependencies must be an array")
		return
	}
	for idx, dep := range deps {
		obj, ok := asObject(dep)
		if !ok {
			c.result.Errorf(c.path, "dependencies[%d] must be an object", idx)
			continue
		}
		id := stringField(obj, "id")
		if id == "" {
			c.result.Errorf(c.path, "dependencies[%d].id is required", idx)
			continue
		}
		c.sum.Dependencies = append(c.sum.Dependencies, id)
	}
}

func (c *manifestCheck) entry() {
	raw, present := c.doc["entry"]
	if !present || raw == nil {
		return
	}
	entry, ok := raw.(string)
	entry = strings.TrimSpace(entry)
	if !ok || entry == "" {
		c.result.Errorf(c.path, "entry must be a non-empty string when provided")
		return
	}
	c.sum.Entry = entry

	if !IsSafeRelative(entry) {
		c.result.Errorf(c.path, "entry must be a safe relative path")
		return
	}
	entryPath := filepath.Join(c.dir, filepath.FromSlash(entry))
	if _, err := os.Stat(entryPath); err != nil {
		c.result.Errorf(entryPath, "entry file not found: %s", entry)
	}

	ext := ""
	if i := strings.LastIndex(entry, "."); i >= 0 {
		ext = strings.ToLower(entry[i+1:])
	}
	if !slices.Contains(entryExtensions, ext) {
		c.result.Warnf(c.path, "entry extension '%s' is unusual (expected one of %s)", ext, strings.Join(entryExtensions, ", "))
	}
	if ext == "wasm" {
		c.result.Warnf(c.path, "wasm runtime is scaffolded but currently unavailable")
	}
}

func (c *manifestCheck) content() {
	raw, present := c.doc["content"]
	if !present || raw == nil {
		return
	}
	content, ok := asObject(raw)
	if !ok {
		c.result.Errorf(c.path, "content must be an object")
		return
	}
	root, ok := content["root"].(string)
	root = strings.TrimSpace(root)
	if !ok || root == "" {
		c.result.Errorf(c.path, "content.root must be a non-empty string")
		return
	}
	c.sum.ContentRoot = root

	if !IsSafeRelative(root) {
		c.result.Errorf(c.path, "content.root must be a safe relative path")
		return
	}
	contentDir := filepath.Join(c.dir, filepath.FromSlash(root))
	if !isDir(contentDir) {
		c.result.Errorf(contentDir, "content root not found: %s", root)
		return
	}
	ValidateContent(contentDir, c.result)
}

func (c *manifestCheck) overrides() {
	overrides, ok := asArray(c.doc["overrides"])
	if !ok {
		c.result.Errorf(c.path, "overrides must be an array")
		return
	}
	for idx, value := range overrides {
		if !isOverrideRef(value) {
			c.result.Warnf(c.path, "overrides[%d] should use '<kind>:<id>' format", idx)
		}
	}
}

// isOverrideRef reports whether v is a "<kind>:<id>" string with both parts set.
func isOverrideRef(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	kind, id, found := strings.Cut(s, ":")
	return found && strings.TrimSpace(kind) != "" && strings.TrimSpace(id) != ""
}

// String returns a one-line description used in logs.
func (s *ModSummary) String() string {
	return fmt.Sprintf("%s@%s (load_order %d)", s.ModID, s.Version, s.LoadOrder)
}

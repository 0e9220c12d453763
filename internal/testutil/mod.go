// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"encoding/json"
	"path/filepath"
	"testing"
)

type (
	// ModFixture describes a mod written by WriteMod. Zero values are omitted
	// from the manifest, except Name and Version which default to ID and 1.0.0.
	ModFixture struct {
		ID           string
		Name         string
		Version      string
		LoadOrder    int
		Dependencies []string
		Entry        string
		ContentRoot  string
		// Files are extra files relative to the mod directory.
		Files map[string]string
	}

	fixtureManifest struct {
		Meta         fixtureMeta     `json:"meta"`
		LoadOrder    int             `json:"load_order"`
		Dependencies []fixtureDep    `json:"dependencies"`
		Entry        string          `json:"entry,omitempty"`
		Content      *fixtureContent `json:"content,omitempty"`
	}

	fixtureMeta struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Version string `json:"version"`
	}

	fixtureDep struct {
		ID string `json:"id"`
	}

	fixtureContent struct {
		Root string `json:"root"`
	}
)

// WriteMod writes root/<ID>/mod.json plus any extra files and returns the mod
// directory.
func WriteMod(t testing.TB, root string, mod ModFixture) string {
	t.Helper()

	manifest := fixtureManifest{
		Meta: fixtureMeta{
			ID:      mod.ID,
			Name:    mod.Name,
			Version: mod.Version,
		},
		LoadOrder:    mod.LoadOrder,
		Dependencies: []fixtureDep{},
		Entry:        mod.Entry,
	}
	if manifest.Meta.Name == "" {
		manifest.Meta.Name = mod.ID
	}
	if manifest.Meta.Version == "" {
		manifest.Meta.Version = "1.0.0"
	}
	for _, dep := range mod.Dependencies {
		manifest.Dependencies = append(manifest.Dependencies, fixtureDep{ID: dep})
	}
	if mod.ContentRoot != "" {
		manifest.Content = &fixtureContent{Root: mod.ContentRoot}
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		t.Fatalf("failed to encode manifest for %s: %v", mod.ID, err)
	}

	dir := filepath.Join(root, mod.ID)
	MustWriteFile(t, filepath.Join(dir, "mod.json"), string(data))
	WriteFiles(t, dir, mod.Files)
	if mod.ContentRoot != "" {
		MustMkdirAll(t, filepath.Join(dir, filepath.FromSlash(mod.ContentRoot)))
	}
	return dir
}

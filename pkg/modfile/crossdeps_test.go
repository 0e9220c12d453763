// SPDX-License-Identifier: MPL-2.0

package modfile

import (
	"path/filepath"
	"slices"
	"testing"
)

func modWithDeps(id string, loadOrder string, deps ...string) string {
	body := `{"meta": {"id": "` + id + `", "name": "` + id + `", "version": "1"}, "load_order": ` + loadOrder + `, "dependencies": [`
	for i, dep := range deps {
		if i > 0 {
			body += ", "
		}
		body += `{"id": "` + dep + `"}`
	}
	return body + "]}"
}

func TestValidateAll_CrossDependencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mods      map[string]string
		wantByMod map[string][]string
	}{
		{
			name: "forward reference to later load order",
			mods: map[string]string{
				"a": modWithDeps("a", "0", "b"),
				"b": modWithDeps("b", "10"),
			},
			wantByMod: map[string][]string{"a": nil, "b": nil},
		},
		{
			name: "backward reference",
			mods: map[string]string{
				"a": modWithDeps("a", "10", "b"),
				"b": modWithDeps("b", "0"),
			},
			wantByMod: map[string][]string{"a": nil, "b": nil},
		},
		{
			name: "missing dependency reported once",
			mods: map[string]string{
				"a": modWithDeps("a", "0", "ghost", "ghost"),
			},
			wantByMod: map[string][]string{"a": {"missing dependency 'ghost'"}},
		},
		{
			name: "mod without manifest is not a provider",
			mods: map[string]string{
				"a": modWithDeps("a", "0", "b"),
				"b": `not json`,
			},
			wantByMod: map[string][]string{"a": {"missing dependency 'b'"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			var dirs []string
			for _, id := range []string{"a", "b"} {
				body, ok := tt.mods[id]
				if !ok {
					continue
				}
				dirs = append(dirs, newMod(t, root, id, map[string]string{ManifestFile: body}))
			}

			results := ValidateAll(dirs)
			if len(results) != len(dirs) {
				t.Fatalf("expected %d results, got %d", len(dirs), len(results))
			}
			for _, res := range results {
				id := filepath.Base(res.Root)
				want, check := tt.wantByMod[id]
				if !check {
					continue
				}
				if got := messages(res, LevelError); !slices.Equal(got, want) {
					t.Errorf("mod %s errors = %v, want %v", id, got, want)
				}
			}
		})
	}
}

func TestCheckCrossDependencies_IssuePath(t *testing.T) {
	t.Parallel()

	res := NewValidationResult("/mods/a")
	res.Summary = &ModSummary{Root: "/mods/a", ModID: "a", Dependencies: []string{"z"}}
	CheckCrossDependencies([]*ValidationResult{res})

	if len(res.Issues) != 1 {
		t.Fatalf("expected one issue, got %+v", res.Issues)
	}
	if res.Issues[0].Path != filepath.Join("/mods/a", ManifestFile) {
		t.Errorf("issue path = %q", res.Issues[0].Path)
	}
}

// SPDX-License-Identifier: MPL-2.0

package modfile

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"
)

// CollectModDirs resolves a validate/inspect target to mod directories.
//
// A path holding a manifest is a single mod. Otherwise path is treated as a mods
// root and its immediate subdirectories holding a manifest are returned in name
// order. A missing path, or one that is not a directory, yields nothing.
func CollectModDirs(path string) []string {
	if exists(filepath.Join(path, ManifestFile)) {
		return []string{path}
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		if !isDir(child) {
			continue
		}
		if exists(filepath.Join(child, ManifestFile)) {
			dirs = append(dirs, child)
		}
	}
	return dirs
}

// Summaries returns the non-nil summaries of results, in order.
func Summaries(results []*ValidationResult) []*ModSummary {
	out := make([]*ModSummary, 0, len(results))
	for _, res := range results {
		if res.Summary != nil {
			out = append(out, res.Summary)
		}
	}
	return out
}

// SortByLoadOrder sorts summaries in place by load order, then mod id.
func SortByLoadOrder(summaries []*ModSummary) {
	slices.SortStableFunc(summaries, func(a, b *ModSummary) int {
		return cmp.Or(
			cmp.Compare(a.LoadOrder, b.LoadOrder),
			cmp.Compare(a.ModID, b.ModID),
		)
	})
}

// DuplicateIDs returns, sorted, the mod ids used by more than one summary.
func DuplicateIDs(summaries []*ModSummary) []string {
	counts := make(map[string]int, len(summaries))
	for _, s := range summaries {
		counts[s.ModID]++
	}
	var dups []string
	for id, n := range counts {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	slices.Sort(dups)
	return dups
}

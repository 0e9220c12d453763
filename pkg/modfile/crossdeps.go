// SPDX-License-Identifier: MPL-2.0

package modfile

import (
	"path/filepath"
	"slices"
)

// CheckCrossDependencies verifies every declared dependency against the ids of
// all validated mods. It must run after every manifest has been validated so
// that dependencies on mods with a later load order are accepted. A missing
// dependency is recorded once on the declaring mod's own result.
func CheckCrossDependencies(results []*ValidationResult) {
	ids := make(map[string]bool, len(results))
	for _, res := range results {
		if res.Summary != nil {
			ids[res.Summary.ModID] = true
		}
	}

	for _, res := range results {
		if res.Summary == nil {
			continue
		}
		manifestPath := filepath.Join(res.Root, ManifestFile)
		var reported []string
		for _, dep := range res.Summary.Dependencies {
			if ids[dep] || slices.Contains(reported, dep) {
				continue
			}
			reported = append(reported, dep)
			res.Errorf(manifestPath, "missing dependency '%s'", dep)
		}
	}
}

// ValidateAll validates each mod directory in order and then runs the cross-mod
// dependency check. The returned results keep the order of dirs.
func ValidateAll(dirs []string) []*ValidationResult {
	results := make([]*ValidationResult, 0, len(dirs))
	for _, dir := range dirs {
		results = append(results, Validate(dir))
	}
	CheckCrossDependencies(results)
	return results
}

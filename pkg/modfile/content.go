// SPDX-License-Identifier: MPL-2.0

package modfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"moddev/pkg/moddsl"
)

// ValidateContent checks the content directory of one mod and records findings
// on r. Mixin definitions are loaded first so that content files can be checked
// against them; every file is optional, and a broken file never stops the
// remaining files from being checked.
func ValidateContent(contentDir string, r *ValidationResult) {
	mixins := &MixinSet{ByID: map[string]*MixinDef{}}
	if path := filepath.Join(contentDir, ConsumableMixinsFile); exists(path) {
		mixins = LoadMixins(path, r)
	}

	for _, rule := range ConsumableRules {
		path := filepath.Join(contentDir, rule.File)
		if !exists(path) {
			continue
		}
		validateConsumables(path, rule, mixins, r)
	}

	named := &NamedMixinSet{ByID: map[string]*NamedMixinDef{}}
	if path := filepath.Join(contentDir, NamedEffectMixinsFile); exists(path) {
		named = LoadNamedMixins(path, r)
	}

	for _, rule := range NamedRules {
		path := filepath.Join(contentDir, rule.File)
		if !exists(path) {
			continue
		}
		validateNamedDSL(path, rule, named, r)
	}
}

func validateConsumables(path string, rule ConsumableRule, mixins *MixinSet, r *ValidationResult) {
	data, err := LoadJSON(path)
	if err != nil {
		r.Add(LevelError, err.Error(), path)
		return
	}
	items, ok := data.([]any)
	if !ok {
		r.Errorf(path, "file must be a JSON array")
		return
	}

	seen := make(map[string]bool, len(items))
	for idx, item := range items {
		prefix := fmt.Sprintf("%s[%d]", rule.File, idx)
		obj, ok := asObject(item)
		if !ok {
			r.Errorf(path, "%s must be an object", prefix)
			continue
		}

		switch id := stringField(obj, "id"); {
		case id == "":
			r.Errorf(path, "%s.id is required", prefix)
		case seen[id]:
			r.Errorf(path, "duplicate id '%s' in %s", id, rule.File)
		default:
			seen[id] = true
		}

		if stringField(obj, "name") == "" {
			r.Errorf(path, "%s.name is required", prefix)
		}

		if kind := stringField(obj, "kind"); kind != rule.Kind {
			if kind == "" {
				kind = "-"
			}
			r.Errorf(path, "%s.kind must be '%s' (got '%s')", prefix, rule.Kind, kind)
		}

		if effects, ok := obj["effects"].([]any); !ok || len(effects) == 0 {
			r.Warnf(path, "%s.effects is empty", prefix)
		}

		refs, ok := asStrings(obj["mixins"], false)
		if !ok {
			r.Errorf(path, "%s.mixins must be an array of strings", prefix)
			continue
		}
		for _, ref := range refs {
			def, known := mixins.ByID[ref]
			if !known {
				r.Errorf(path, "%s references unknown mixin '%s'", prefix, ref)
				continue
			}
			if !def.Allows(rule.Kind) {
				r.Errorf(path, "%s kind '%s' is not allowed by mixin '%s' (%s)", prefix, rule.Kind, ref, kindList(def.Kinds))
			}
		}
	}
}

func validateNamedDSL(path string, rule NamedRule, named *NamedMixinSet, r *ValidationResult) {
	raw, err := os.ReadFile(path)
	if err != nil {
		r.Errorf(path, "%v: %v", ErrRead, err)
		return
	}

	blocks := moddsl.ParseBlocks(string(raw), string(rule.Kind))
	for _, perr := range blocks.Errors {
		r.Add(LevelError, perr.Error(), path)
	}

	for _, id := range blocks.Order {
		for _, ref := range blocks.ByID[id].Mixins {
			def, known := named.ByID[ref]
			if !known {
				r.Errorf(path, "%s '%s' references unknown named mixin '%s'", rule.Kind, id, ref)
				continue
			}
			if !def.Allows(rule.Kind) {
				r.Errorf(path, "%s '%s' is not allowed by named mixin '%s' (%s)", rule.Kind, id, ref, kindList(def.Kinds))
			}
		}
	}
}

// exists reports whether path exists. Stat failures other than "not found" are
// treated as existing so that the subsequent read reports them.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// isDir reports whether path is an existing directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

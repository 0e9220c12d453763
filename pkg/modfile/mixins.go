// SPDX-License-Identifier: MPL-2.0

package modfile

import (
	"fmt"
	"slices"
	"strings"

	"moddev/internal/dag"
)

type (
	// MixinDef is a reusable bundle for consumable content.
	MixinDef struct {
		ID string
		// Kinds restricts which consumable kinds may use the mixin. Empty means
		// unrestricted.
		Kinds    []string
		Requires []string
	}

	// NamedMixinDef is a reusable bundle for joker, tag and boss definitions.
	NamedMixinDef struct {
		ID string
		// Kinds restricts which named kinds may use the mixin. Empty means
		// unrestricted.
		Kinds    []NamedKind
		Requires []string
		Effects  []string
	}

	// MixinSet holds the consumable mixins of one content directory. The first
	// definition of an id wins; later duplicates are reported and dropped.
	MixinSet struct {
		Order []string
		ByID  map[string]*MixinDef
	}

	// NamedMixinSet holds the named mixins of one content directory. It is a
	// separate namespace from MixinSet.
	NamedMixinSet struct {
		Order []string
		ByID  map[string]*NamedMixinDef
	}
)

// Allows reports whether a mixin with the given kind restriction may be used by
// content of kind.
func (d *MixinDef) Allows(kind string) bool {
	return len(d.Kinds) == 0 || slices.Contains(d.Kinds, kind)
}

// Allows reports whether the named mixin may be used by definitions of kind.
func (d *NamedMixinDef) Allows(kind NamedKind) bool {
	return len(d.Kinds) == 0 || slices.Contains(d.Kinds, kind)
}

func (s *MixinSet) requires() map[string][]string {
	out := make(map[string][]string, len(s.ByID))
	for id, def := range s.ByID {
		out[id] = def.Requires
	}
	return out
}

func (s *NamedMixinSet) requires() map[string][]string {
	out := make(map[string][]string, len(s.ByID))
	for id, def := range s.ByID {
		out[id] = def.Requires
	}
	return out
}

// LoadMixins reads consumable_mixins.json at path, recording every problem on r.
// The returned set is never nil; it is empty when the file could not be used.
func LoadMixins(path string, r *ValidationResult) *MixinSet {
	set := &MixinSet{ByID: make(map[string]*MixinDef)}

	data, err := LoadJSON(path)
	if err != nil {
		r.Add(LevelError, err.Error(), path)
		return set
	}
	items, ok := data.([]any)
	if !ok {
		r.Errorf(path, "%s must be a JSON array", ConsumableMixinsFile)
		return set
	}

	for idx, item := range items {
		prefix := fmt.Sprintf("%s[%d]", ConsumableMixinsFile, idx)
		def, problems := decodeMixin(item, prefix)
		if len(problems) > 0 {
			for _, p := range problems {
				r.Add(LevelError, p, path)
			}
			continue
		}
		if _, dup := set.ByID[def.ID]; dup {
			r.Errorf(path, "duplicate mixin id '%s'", def.ID)
			continue
		}
		set.ByID[def.ID] = def
		set.Order = append(set.Order, def.ID)
	}

	checkMixinGraph(r, path, "mixin", set.Order, set.requires())
	return set
}

// LoadNamedMixins reads named_effect_mixins.json at path, recording every
// problem on r. The returned set is never nil.
func LoadNamedMixins(path string, r *ValidationResult) *NamedMixinSet {
	set := &NamedMixinSet{ByID: make(map[string]*NamedMixinDef)}

	data, err := LoadJSON(path)
	if err != nil {
		r.Add(LevelError, err.Error(), path)
		return set
	}
	items, ok := data.([]any)
	if !ok {
		r.Errorf(path, "%s must be a JSON array", NamedEffectMixinsFile)
		return set
	}

	for idx, item := range items {
		prefix := fmt.Sprintf("%s[%d]", NamedEffectMixinsFile, idx)
		def, problems := decodeNamedMixin(item, prefix)
		if len(problems) > 0 {
			for _, p := range problems {
				r.Add(LevelError, p, path)
			}
			continue
		}
		if _, dup := set.ByID[def.ID]; dup {
			r.Errorf(path, "duplicate named mixin id '%s'", def.ID)
			continue
		}
		set.ByID[def.ID] = def
		set.Order = append(set.Order, def.ID)
	}

	checkMixinGraph(r, path, "named mixin", set.Order, set.requires())
	return set
}

// decodeMixin turns one array element into a MixinDef, or explains why it can't.
func decodeMixin(item any, prefix string) (*MixinDef, []string) {
	obj, ok := asObject(item)
	if !ok {
		return nil, []string{prefix + " must be an object"}
	}
	id := stringField(obj, "id")
	if id == "" {
		return nil, []string{prefix + ".id is required"}
	}
	kinds, ok := asStrings(obj["kinds"], false)
	if !ok {
		return nil, []string{prefix + ".kinds must be an array of strings"}
	}
	requires, ok := asStrings(obj["requires"], true)
	if !ok {
		return nil, []string{prefix + ".requires must be an array of non-empty strings"}
	}
	if _, ok := asArray(obj["effects"]); !ok {
		return nil, []string{prefix + ".effects must be an array"}
	}
	return &MixinDef{ID: id, Kinds: kinds, Requires: requires}, nil
}

// decodeNamedMixin turns one array element into a NamedMixinDef. An unknown kind
// voids the whole entry.
func decodeNamedMixin(item any, prefix string) (*NamedMixinDef, []string) {
	obj, ok := asObject(item)
	if !ok {
		return nil, []string{prefix + " must be an object"}
	}
	id := stringField(obj, "id")
	if id == "" {
		return nil, []string{prefix + ".id is required"}
	}
	rawKinds, ok := asStrings(obj["kinds"], false)
	if !ok {
		return nil, []string{prefix + ".kinds must be an array of strings"}
	}

	var (
		kinds    []NamedKind
		problems []string
	)
	for _, raw := range rawKinds {
		kind, ok := NormalizeNamedKind(raw)
		if !ok {
			problems = append(problems, fmt.Sprintf("%s.kinds has invalid value '%s' (allowed: joker/tag/boss)", prefix, raw))
			continue
		}
		if !slices.Contains(kinds, kind) {
			kinds = append(kinds, kind)
		}
	}
	if len(problems) > 0 {
		return nil, problems
	}

	requires, ok := asStrings(obj["requires"], true)
	if !ok {
		return nil, []string{prefix + ".requires must be an array of non-empty strings"}
	}
	effects, ok := asStrings(obj["effects"], true)
	if !ok {
		return nil, []string{prefix + ".effects must be an array of non-empty strings"}
	}
	return &NamedMixinDef{ID: id, Kinds: kinds, Requires: requires, Effects: effects}, nil
}

// checkMixinGraph reports requirements on undefined mixins, then builds the
// dependency graph from the remaining edges and reports each cycle once.
func checkMixinGraph(r *ValidationResult, path, label string, order []string, requires map[string][]string) {
	edges := make(map[string][]string, len(order))
	for _, id := range order {
		edges[id] = nil
		for _, dep := range requires[id] {
			if _, known := requires[dep]; !known {
				r.Errorf(path, "%s '%s' requires unknown mixin '%s'", label, id, dep)
				continue
			}
			edges[id] = append(edges[id], dep)
		}
	}
	for _, cycle := range dag.FromEdges(edges).Cycles() {
		r.Errorf(path, "%s dependency cycle: %s", label, cycle)
	}
}

// kindList renders a kind restriction for messages.
func kindList[T ~string](kinds []T) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}

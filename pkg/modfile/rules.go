// SPDX-License-Identifier: MPL-2.0

package modfile

import (
	"regexp"
	"strings"
)

const (
	// ManifestFile is the name of the manifest at the root of every mod.
	ManifestFile = "mod.json"

	// ConsumableMixinsFile defines reusable mixins for consumable content.
	ConsumableMixinsFile = "consumable_mixins.json"
	// NamedEffectMixinsFile defines reusable mixins for jokers, tags and bosses.
	NamedEffectMixinsFile = "named_effect_mixins.json"

	// NamedKindJoker is the joker definition kind.
	NamedKindJoker NamedKind = "joker"
	// NamedKindTag is the tag definition kind.
	NamedKindTag NamedKind = "tag"
	// NamedKindBoss is the boss blind definition kind.
	NamedKindBoss NamedKind = "boss"
)

type (
	// NamedKind is one of the DSL-defined content kinds a named mixin may target.
	NamedKind string

	// ConsumableRule binds a consumable content file to the kind tag every item
	// in it must carry.
	ConsumableRule struct {
		File string
		Kind string
	}

	// NamedRule binds a DSL file to the block keyword and kind it defines.
	NamedRule struct {
		File string
		Kind NamedKind
	}
)

var (
	// modIDPattern is the accepted shape of meta.id and scaffold ids.
	modIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	// entryExtensions lists the script extensions a manifest entry may use.
	entryExtensions = []string{"lua", "wasm"}

	// ConsumableRules lists the consumable content files in validation order.
	ConsumableRules = []ConsumableRule{
		{File: "tarots.json", Kind: "Tarot"},
		{File: "planets.json", Kind: "Planet"},
		{File: "spectrals.json", Kind: "Spectral"},
	}

	// NamedRules lists the named DSL files in validation order.
	NamedRules = []NamedRule{
		{File: "jokers.dsl", Kind: NamedKindJoker},
		{File: "tags.dsl", Kind: NamedKindTag},
		{File: "bosses.dsl", Kind: NamedKindBoss},
	}

	// namedKindAliases maps lower-cased spellings to their kind.
	namedKindAliases = map[string]NamedKind{
		"joker":  NamedKindJoker,
		"jokers": NamedKindJoker,
		"tag":    NamedKindTag,
		"tags":   NamedKindTag,
		"boss":   NamedKindBoss,
		"bosses": NamedKindBoss,
	}
)

// IsValidModID reports whether id is a legal mod id.
func IsValidModID(id string) bool {
	return modIDPattern.MatchString(id)
}

// NormalizeNamedKind maps a case-insensitive singular or plural kind name to
// its NamedKind.
func NormalizeNamedKind(raw string) (NamedKind, bool) {
	kind, ok := namedKindAliases[strings.ToLower(strings.TrimSpace(raw))]
	return kind, ok
}

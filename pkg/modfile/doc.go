// SPDX-License-Identifier: MPL-2.0

// Package modfile validates mod directories.
//
// A mod is a directory holding a mod.json manifest, an optional script entry and
// an optional content directory. Validate checks one mod and returns every
// finding as an Issue; ValidateAll checks a set of mods and then verifies the
// dependencies they declare on each other. Findings are data, never Go errors:
// a broken file is reported and the remaining files are still checked.
//
// Content directories may define two independent mixin namespaces. Consumable
// mixins (consumable_mixins.json) are referenced by tarots, planets and
// spectrals; named mixins (named_effect_mixins.json) are referenced from the
// joker, tag and boss DSL files. Both are checked for unknown requirements and
// dependency cycles.
package modfile

// SPDX-License-Identifier: MPL-2.0

// Package moddsl scans the line-oriented block files (jokers.dsl, tags.dsl,
// bosses.dsl) that mods ship in their content directory.
//
// The files are not parsed with a grammar. Each line is comment-stripped and its
// brace delta is added to a running depth, which is enough to find where a
// `<keyword> <id> "<name>" { ... }` block ends and to pick up the
// `mixin a b c` / `mixins { a, b, c }` declarations inside it. Both primitives
// ignore comment markers and braces that appear inside double-quoted strings.
package moddsl

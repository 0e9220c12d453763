// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents against an embedded schema.
//
// Decoding happens in three steps: the schema is compiled, the user document is
// compiled and unified with the schema definition, and the unified value is
// validated and decoded into a Go struct. Errors carry the file name and a
// JSON-style path to the offending field:
//
//	config.cue: report.format: 2 errors in empty disjunction
package cueutil

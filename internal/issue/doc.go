// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// suggestions for fixing it. The Issue catalog holds longer Markdown guidance
// for the same conditions, rendered with glamour in verbose mode.
package issue

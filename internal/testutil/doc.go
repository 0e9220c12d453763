// SPDX-License-Identifier: MPL-2.0

// Package testutil provides fixture helpers for tests that build mods on disk.
// Every helper fails the test immediately when the filesystem operation fails.
package testutil

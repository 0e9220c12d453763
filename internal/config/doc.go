// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the
// file format.
//
// Configuration is read from the first file found among the --config flag,
// $XDG_CONFIG_HOME/moddev/config.cue (or the platform's user config directory)
// and ./moddev.cue. The file is validated against an embedded CUE schema
// (config_schema.cue) before being merged over the defaults. Environment
// variables prefixed with MODDEV_ override both, e.g. MODDEV_REPORT_FORMAT=json.
package config

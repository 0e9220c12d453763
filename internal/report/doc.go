// SPDX-License-Identifier: MPL-2.0

// Package report renders validation results and mod inventories for the CLI,
// as styled text or as JSON.
package report

// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"io"
	"strings"

	"moddev/pkg/modfile"
)

const (
	inspectHeader = "load_order  id                 version   deps  entry"
	inspectRule   = "----------  -----------------  -------   ----  ------------------------"
)

type inspectJSON struct {
	Mods       []*modfile.ModSummary `json:"mods"`
	Duplicates []string              `json:"duplicates"`
}

// WriteInspectText writes summaries as a fixed-width table. Summaries are
// expected in load order. A non-empty dups adds a trailing warning line.
func WriteInspectText(w io.Writer, summaries []*modfile.ModSummary, dups []string, styles Styles) error {
	var sb strings.Builder
	sb.WriteString(styles.Header.Render(inspectHeader) + "\n")
	sb.WriteString(styles.Muted.Render(inspectRule) + "\n")
	for _, s := range summaries {
		fmt.Fprintf(&sb, "%10d  %-17s  %-7s   %-4s  %s\n", s.LoadOrder, s.ModID, s.Version, depsColumn(s.Dependencies), dashIfEmpty(s.Entry))
	}
	if len(dups) > 0 {
		sb.WriteString("\n" + styles.Warning.Render("warning: duplicate mod ids detected: "+strings.Join(dups, ", ")) + "\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write inspect report: %w", err)
	}
	return nil
}

// WriteInspectJSON writes summaries and duplicate ids as indented JSON.
func WriteInspectJSON(w io.Writer, summaries []*modfile.ModSummary, dups []string) error {
	if summaries == nil {
		summaries = []*modfile.ModSummary{}
	}
	if dups == nil {
		dups = []string{}
	}
	return encodeJSON(w, inspectJSON{Mods: summaries, Duplicates: dups})
}

func depsColumn(deps []string) string {
	if len(deps) == 0 {
		return "-"
	}
	return strings.Join(deps, ",")
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// SPDX-License-Identifier: MPL-2.0

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"moddev/pkg/modfile"
)

type (
	// Totals aggregates finding counts over a validation run.
	Totals struct {
		Mods     int `json:"mods"`
		Errors   int `json:"errors"`
		Warnings int `json:"warnings"`
	}

	validationJSON struct {
		Mods   []*modfile.ValidationResult `json:"mods"`
		Totals Totals                      `json:"totals"`
	}
)

// Tally counts mods and findings across results.
func Tally(results []*modfile.ValidationResult) Totals {
	t := Totals{Mods: len(results)}
	for _, res := range results {
		t.Errors += res.Count(modfile.LevelError)
		t.Warnings += res.Count(modfile.LevelWarning)
	}
	return t
}

// String renders the closing summary line of a text report.
func (t Totals) String() string {
	return fmt.Sprintf("validation complete: %d mod(s), %d error(s), %d warning(s)", t.Mods, t.Errors, t.Warnings)
}

// WriteValidationText writes one section per mod, in the order given, followed
// by the aggregate summary line. A mod without findings is reported as OK.
func WriteValidationText(w io.Writer, results []*modfile.ValidationResult, styles Styles) error {
	var sb strings.Builder
	for _, res := range results {
		sb.WriteString(styles.Header.Render(fmt.Sprintf("[%s] %s", modLabel(res), res.Root)))
		sb.WriteString("\n")
		if len(res.Issues) == 0 {
			sb.WriteString("  - " + styles.OK.Render("OK") + "\n")
			continue
		}
		for _, issue := range res.Issues {
			sb.WriteString("  - " + levelLabel(issue.Level, styles) + ": " + issue.Message)
			if issue.Path != "" {
				sb.WriteString(" " + styles.Muted.Render("("+issue.Path+")"))
			}
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
	sb.WriteString(Tally(results).String())
	sb.WriteString("\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write validation report: %w", err)
	}
	return nil
}

// WriteValidationJSON writes results and their totals as an indented JSON
// document.
func WriteValidationJSON(w io.Writer, results []*modfile.ValidationResult) error {
	if results == nil {
		results = []*modfile.ValidationResult{}
	}
	return encodeJSON(w, validationJSON{Mods: results, Totals: Tally(results)})
}

func modLabel(res *modfile.ValidationResult) string {
	if res.Summary == nil {
		return "-"
	}
	return res.Summary.ModID
}

func levelLabel(level modfile.Level, styles Styles) string {
	label := strings.ToUpper(level.String())
	if level == modfile.LevelError {
		return styles.Error.Render(label)
	}
	return styles.Warning.Render(label)
}

func encodeJSON(w io.Writer, v any) error {
	if w == nil {
		return errors.New("writer is nil")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// SPDX-License-Identifier: MPL-2.0

package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorHeader  = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
)

// Styles controls how text reports are decorated.
type Styles struct {
	Header  lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	OK      lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles returns styles bound to w. Colors are only emitted when color is
// set and w supports them; otherwise every style renders text unchanged.
func NewStyles(w io.Writer, color bool) Styles {
	if !color {
		return PlainStyles()
	}
	r := lipgloss.NewRenderer(w)
	return Styles{
		Header:  r.NewStyle().Bold(true).Foreground(colorHeader),
		Error:   r.NewStyle().Bold(true).Foreground(colorError),
		Warning: r.NewStyle().Foreground(colorWarning),
		OK:      r.NewStyle().Foreground(colorSuccess),
		Muted:   r.NewStyle().Foreground(colorMuted),
	}
}

// PlainStyles returns styles that add no decoration.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Header: plain, Error: plain, Warning: plain, OK: plain, Muted: plain}
}

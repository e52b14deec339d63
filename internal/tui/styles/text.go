package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Convenience color helpers
// ---------------------------------------------------------------------------

// Accent renders s in AccentPrimary (indigo).
func Accent(s string) string {
	return lipgloss.NewStyle().Foreground(AccentPrimary).Render(s)
}

// Amber renders s in StatusWarn.
func Amber(s string) string {
	return lipgloss.NewStyle().Foreground(StatusWarn).Render(s)
}

// Green renders s in StatusOK.
func Green(s string) string {
	return lipgloss.NewStyle().Foreground(StatusOK).Render(s)
}

// Red renders s in StatusError.
func Red(s string) string {
	return lipgloss.NewStyle().Foreground(StatusError).Render(s)
}

// Dim renders s in TextMuted.
func Dim(s string) string {
	return lipgloss.NewStyle().Foreground(TextMuted).Render(s)
}

// Bold renders s in bold TextPrimary.
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(TextPrimary).Render(s)
}

// ---------------------------------------------------------------------------
// Text utilities
// ---------------------------------------------------------------------------

// TruncateWithEllipsis shortens s to max display cells, appending "..." when
// truncation occurs. Wide (CJK) runes count as two cells.
func TruncateWithEllipsis(s string, max int) string {
	if lipgloss.Width(s) <= max {
		return s
	}
	if max < 4 {
		return cutCells(s, max)
	}
	return cutCells(s, max-3) + "..."
}

func cutCells(s string, max int) string {
	w := 0
	for i, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > max {
			return s[:i]
		}
		w += rw
	}
	return s
}

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/aistudio-primer/internal/tui/styles"
)

// ProgressStep shows "步骤 n/N" followed by one dot per step.
type ProgressStep struct {
	Total   int
	Current int // 0-indexed
}

// Render returns the styled progress indicator. Visited steps get a filled
// dot, the current step an accented dot, and future steps an empty circle.
func (p ProgressStep) Render() string {
	if p.Total <= 0 {
		return ""
	}

	done := lipgloss.NewStyle().Foreground(styles.AccentSoft)
	cur := lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true)
	todo := lipgloss.NewStyle().Foreground(styles.TextMuted)

	dots := make([]string, p.Total)
	for i := range p.Total {
		switch {
		case i < p.Current:
			dots[i] = done.Render("●")
		case i == p.Current:
			dots[i] = cur.Render("●")
		default:
			dots[i] = todo.Render("○")
		}
	}

	label := styles.Label.Render(fmt.Sprintf("步骤 %d/%d", p.Current+1, p.Total))
	return label + "  " + strings.Join(dots, " ")
}

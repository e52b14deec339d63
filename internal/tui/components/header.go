package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/aistudio-primer/internal/tui/styles"
)

// Header renders the two-line brand block at the top of the sidebar.
type Header struct {
	Subtitle string
	Width    int
}

// Height is the number of lines Render produces.
func (h Header) Height() int { return 3 }

// Render returns the styled header string.
func (h Header) Render() string {
	width := h.Width
	if width <= 0 {
		width = 28
	}

	logo := lipgloss.NewStyle().
		Foreground(styles.AccentSoft).
		Bold(true).
		Render(styles.Logo)

	sub := h.Subtitle
	if sub == "" {
		sub = "中文入门教程"
	}
	subtitle := styles.Label.Render(sub)

	return lipgloss.JoinVertical(lipgloss.Left,
		logo,
		subtitle,
		styles.Divider(width),
	)
}

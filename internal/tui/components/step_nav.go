package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/aistudio-primer/internal/tui/styles"
)

const (
	prevLabel = "← 上一步"
	nextLabel = "下一步 →"
)

// StepNav renders the previous/next controls under a step. A control is
// hidden when there is no step in that direction.
type StepNav struct {
	HasPrev bool
	HasNext bool
	Width   int
}

// Render returns the styled controls, spread to Width.
func (n StepNav) Render() string {
	left, right := "", ""
	if n.HasPrev {
		left = styles.Button.Render(prevLabel)
	}
	if n.HasNext {
		right = styles.ButtonPrimary.Render(nextLabel)
	}

	gap := n.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")
	return styles.Divider(n.Width) + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right)
}

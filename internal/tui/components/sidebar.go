package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/aistudio-primer/internal/tui/styles"
	"github.com/Dallionking/aistudio-primer/internal/tutorial"
)

// SidebarWidth is the fixed width of the navigation column.
const SidebarWidth = 32

// DefaultTip is shown at the bottom of the sidebar.
const DefaultTip = "小贴士: 这是一个教学演示应用。真实开发请前往 aistudio.google.com"

// Sidebar renders the vertical step list.
type Sidebar struct {
	Steps  []tutorial.Step
	Active int
	Height int
	Tip    string
}

// navTop is the first screen row of the step list: top padding, the header
// and a blank line.
func (s Sidebar) navTop() int {
	return styles.Sidebar.GetPaddingTop() + Header{}.Height() + 1
}

// StepAt maps a screen cell to a step index. It reports false for cells
// outside the step rows.
func (s Sidebar) StepAt(x, y int) (int, bool) {
	if x < 0 || x >= SidebarWidth {
		return 0, false
	}
	row := y - s.navTop()
	if row < 0 || row >= len(s.Steps) {
		return 0, false
	}
	return row, true
}

// Render returns the styled sidebar string.
func (s Sidebar) Render() string {
	inner := SidebarWidth - styles.Sidebar.GetHorizontalPadding()

	var rows []string
	for i, step := range s.Steps {
		label := step.Icon.Glyph() + " " + step.Title
		if i == s.Active {
			// The accent bar takes one column outside the style width.
			rows = append(rows, styles.NavItemActive.Width(inner-1).
				Render(styles.TruncateWithEllipsis(label, inner-2)))
		} else {
			rows = append(rows, styles.NavItem.Width(inner).
				Render(styles.TruncateWithEllipsis(label, inner-2)))
		}
	}

	tip := s.Tip
	if tip == "" {
		tip = DefaultTip
	}
	tipBox := styles.Tip.Width(inner - 1).Render(tip)

	top := lipgloss.JoinVertical(lipgloss.Left,
		Header{Width: inner}.Render(),
		"",
		strings.Join(rows, "\n"),
	)

	height := s.Height
	if height <= 0 {
		height = 24
	}
	inH := height - styles.Sidebar.GetVerticalPadding()
	gap := inH - lipgloss.Height(top) - lipgloss.Height(tipBox)
	if gap < 1 {
		gap = 1
	}

	content := top + strings.Repeat("\n", gap) + tipBox
	return styles.Sidebar.
		Width(SidebarWidth).
		Height(height).
		Render(content)
}

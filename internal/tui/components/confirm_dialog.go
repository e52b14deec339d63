package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/aistudio-primer/internal/tui/styles"
)

// ConfirmDialog is a modal yes/no prompt. The model owning it checks Done
// after every Update.
type ConfirmDialog struct {
	Title     string
	Message   string
	Confirmed bool
	Done      bool
	yes       bool
}

// NewConfirmDialog creates a dialog with "no" preselected.
func NewConfirmDialog(title, message string) ConfirmDialog {
	return ConfirmDialog{Title: title, Message: message}
}

// Update handles y/n, arrow selection and enter. ctrl+c confirms.
func (d ConfirmDialog) Update(msg tea.Msg) (ConfirmDialog, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch key.String() {
	case "y", "Y", "ctrl+c":
		d.Confirmed, d.Done = true, true
	case "n", "N", "esc":
		d.Confirmed, d.Done = false, true
	case "enter":
		d.Confirmed, d.Done = d.yes, true
	case "left", "h":
		d.yes = true
	case "right", "l":
		d.yes = false
	case "tab", "shift+tab":
		d.yes = !d.yes
	}
	return d, nil
}

// View returns the styled dialog.
func (d ConfirmDialog) View() string {
	on := lipgloss.NewStyle().
		Background(styles.AccentStrong).
		Foreground(styles.TextOnAccent).
		Bold(true).
		Padding(0, 1)
	off := lipgloss.NewStyle().
		Background(styles.BgSurface).
		Foreground(styles.TextSecondary).
		Padding(0, 1)

	yesBtn, noBtn := off.Render("是 (y)"), on.Render("否 (n)")
	if d.yes {
		yesBtn, noBtn = on.Render("是 (y)"), off.Render("否 (n)")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.Title.Render(d.Title),
		"",
		styles.Subtitle.Render(d.Message),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, yesBtn, "  ", noBtn),
	)

	return lipgloss.NewStyle().
		Background(styles.BgPanel).
		Border(styles.RoundedBorder).
		BorderForeground(styles.StatusWarn).
		Padding(1, 2).
		Width(44).
		Align(lipgloss.Center).
		Render(content)
}

package styles

import "github.com/charmbracelet/lipgloss"

// RoundedBorder is used for panels and chat bubbles.
var RoundedBorder = lipgloss.RoundedBorder()

// AccentBar is a left-only thick rule, used for the active sidebar row and
// the tip box.
var AccentBar = lipgloss.Border{Left: "▌"}

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Logo is the one-line brand mark used in headers and the version command.
const Logo = "◆ AI Studio"

// ---------------------------------------------------------------------------
// Panel styles
// ---------------------------------------------------------------------------

// Panel is the content pane: rounded border in BorderNormal with horizontal
// padding.
var Panel = lipgloss.NewStyle().
	Border(RoundedBorder).
	BorderForeground(BorderNormal).
	Padding(0, 2)

// PanelFocused is Panel with the indigo focus border.
var PanelFocused = Panel.
	BorderForeground(BorderFocused)

// Sidebar is the fixed-width navigation column.
var Sidebar = lipgloss.NewStyle().
	Background(BgSurface).
	Padding(1, 1)

// ---------------------------------------------------------------------------
// Sidebar rows
// ---------------------------------------------------------------------------

// NavItem is an inactive step row.
var NavItem = lipgloss.NewStyle().
	Foreground(TextSecondary).
	PaddingLeft(2)

// NavItemActive is the selected step row.
var NavItemActive = lipgloss.NewStyle().
	Foreground(AccentSoft).
	Background(BgActive).
	Bold(true).
	Border(AccentBar, false, false, false, true).
	BorderForeground(AccentPrimary).
	PaddingLeft(1)

// Tip is the hint box at the bottom of the sidebar.
var Tip = lipgloss.NewStyle().
	Foreground(TextMuted).
	Border(AccentBar, false, false, false, true).
	BorderForeground(BorderNormal).
	PaddingLeft(1)

// ---------------------------------------------------------------------------
// Chat bubbles
// ---------------------------------------------------------------------------

// UserBubble is the right-aligned bubble for the user's prompt.
var UserBubble = lipgloss.NewStyle().
	Foreground(TextOnAccent).
	Background(AccentStrong).
	Padding(0, 1)

// ModelBubble is the left-aligned bubble for model replies.
var ModelBubble = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Border(RoundedBorder).
	BorderForeground(BorderNormal).
	Padding(0, 1)

// ErrorBubble marks failed completions.
var ErrorBubble = lipgloss.NewStyle().
	Foreground(StatusError).
	Background(ErrorBg).
	Border(RoundedBorder).
	BorderForeground(StatusError).
	Padding(0, 1)

// BubbleLabel is the small USER / MODEL caption.
var BubbleLabel = lipgloss.NewStyle().
	Foreground(TextMuted).
	Bold(true)

// Pill is the "Playground 预览" badge.
var Pill = lipgloss.NewStyle().
	Foreground(AccentSoft).
	Border(RoundedBorder).
	BorderForeground(BgActive).
	Padding(0, 1)

// ---------------------------------------------------------------------------
// Buttons
// ---------------------------------------------------------------------------

// Button is an enabled step control.
var Button = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Border(RoundedBorder).
	BorderForeground(BorderNormal).
	Padding(0, 2)

// ButtonPrimary is the filled "next" control.
var ButtonPrimary = Button.
	Foreground(AccentSoft).
	BorderForeground(AccentPrimary).
	Bold(true)

// ---------------------------------------------------------------------------
// Typography styles
// ---------------------------------------------------------------------------

// Title is bold AccentSoft text for section headings.
var Title = lipgloss.NewStyle().
	Foreground(AccentSoft).
	Bold(true)

// Subtitle is regular TextSecondary text for secondary headings.
var Subtitle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// Label is TextMuted text for field labels.
var Label = lipgloss.NewStyle().
	Foreground(TextMuted)

// Value is bold TextPrimary text for data values.
var Value = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Bold(true)

// ---------------------------------------------------------------------------
// Divider
// ---------------------------------------------------------------------------

// Divider returns a horizontal rule of the given width.
func Divider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(BorderNormal).Render(strings.Repeat("─", width))
}

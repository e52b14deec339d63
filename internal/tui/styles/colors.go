package styles

import "github.com/charmbracelet/lipgloss"

// Studio Slate -- indigo accents on slate, after the web console.

var (
	// Backgrounds (darkest to lightest)
	BgDeep    = lipgloss.Color("#0f172a") // slate-900, main background
	BgPanel   = lipgloss.Color("#111827") // content panes
	BgSurface = lipgloss.Color("#1e293b") // slate-800, sidebar and bubbles
	BgActive  = lipgloss.Color("#312e81") // indigo-900, selected step

	// Accents
	AccentPrimary   = lipgloss.Color("#6366f1") // indigo-500
	AccentStrong    = lipgloss.Color("#4f46e5") // indigo-600, user bubbles
	AccentSoft      = lipgloss.Color("#a5b4fc") // indigo-300
	AccentSecondary = lipgloss.Color("#3b82f6") // blue-500

	// Status
	StatusOK    = lipgloss.Color("#22c55e") // green-500
	StatusWarn  = lipgloss.Color("#fbbf24") // amber-400
	StatusError = lipgloss.Color("#f87171") // red-400
	ErrorBg     = lipgloss.Color("#450a0a") // red-950

	// Text
	TextPrimary   = lipgloss.Color("#e2e8f0") // slate-200
	TextSecondary = lipgloss.Color("#94a3b8") // slate-400
	TextMuted     = lipgloss.Color("#64748b") // slate-500
	TextOnAccent  = lipgloss.Color("#ffffff")

	// Borders
	BorderNormal  = lipgloss.Color("#334155") // slate-700
	BorderFocused = lipgloss.Color("#6366f1")
)

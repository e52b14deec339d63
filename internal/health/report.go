package health

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/aistudio-primer/internal/tui/styles"
)

// category display order
var categoryOrder = []string{"config", "credentials", "runtime"}

// categoryLabel returns a human-friendly title for a category key.
func categoryLabel(cat string) string {
	switch cat {
	case "config":
		return "Configuration"
	case "credentials":
		return "Credentials"
	case "runtime":
		return "Model Endpoint"
	default:
		return cat
	}
}

// FormatReport creates a lipgloss-styled health report string.
func FormatReport(r *Report) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(styles.AccentPrimary).
		Bold(true).
		Render("Playground Health Check")
	b.WriteString("\n  " + title + "\n")
	b.WriteString("  " + styles.Divider(50) + "\n")

	grouped := make(map[string][]CheckResult)
	for _, res := range r.Results {
		grouped[res.Category] = append(grouped[res.Category], res)
	}

	nameStyle := lipgloss.NewStyle().Width(16).Foreground(styles.TextPrimary)
	msgStyle := lipgloss.NewStyle().Width(46).Foreground(styles.TextSecondary)
	durStyle := lipgloss.NewStyle().Width(8).Foreground(styles.TextMuted).Align(lipgloss.Right)
	catStyle := lipgloss.NewStyle().
		Foreground(styles.AccentSecondary).
		Bold(true).
		MarginTop(1)

	for _, cat := range categoryOrder {
		results := grouped[cat]
		if len(results) == 0 {
			continue
		}

		b.WriteString("\n  " + catStyle.Render(categoryLabel(cat)) + "\n")

		for _, res := range results {
			name := nameStyle.Render(res.Name)
			msg := msgStyle.Render(styles.TruncateWithEllipsis(res.Message, 44))
			dur := durStyle.Render(formatDuration(res.Duration))
			b.WriteString(fmt.Sprintf("  %s %s %s %s\n", statusSymbol(res.Status), name, msg, dur))
		}
	}

	b.WriteString("\n  " + styles.Divider(50) + "\n")
	summary := fmt.Sprintf("%d/%d passed", r.Passed, r.Total)
	if r.Warned > 0 {
		summary += fmt.Sprintf(", %d warning(s)", r.Warned)
	}
	if r.Failed > 0 {
		summary += fmt.Sprintf(", %d failed", r.Failed)
	}
	b.WriteString("  " + styles.Subtitle.Render(summary))
	b.WriteString("  " + overallBadge(r) + "\n")
	b.WriteString(styles.Dim(fmt.Sprintf("  completed in %s", formatDuration(r.Duration))) + "\n")

	return b.String()
}

// statusSymbol returns a color-coded status symbol.
func statusSymbol(s Status) string {
	var c lipgloss.Color
	switch s {
	case StatusPass:
		c = styles.StatusOK
	case StatusWarn:
		c = styles.StatusWarn
	case StatusFail:
		c = styles.StatusError
	default:
		c = styles.TextMuted
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render(s.Symbol())
}

// overallBadge returns a styled overall status badge.
func overallBadge(r *Report) string {
	switch {
	case r.Failed > 0:
		return lipgloss.NewStyle().Foreground(styles.StatusError).Bold(true).Render("NOT READY")
	case r.Warned > 0:
		return lipgloss.NewStyle().Foreground(styles.StatusWarn).Bold(true).Render("READY (with warnings)")
	default:
		return lipgloss.NewStyle().Foreground(styles.StatusOK).Bold(true).Render("READY")
	}
}

func formatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1 {
		return "<1ms"
	}
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.1fs", float64(ms)/1000.0)
}

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/aistudio-primer/internal/tui/styles"
)

// KeyHint describes a single keybinding hint for display in the footer.
type KeyHint struct {
	Key  string // "enter", "←/→"
	Desc string // "send", "step"
}

// Footer renders context-aware keybinding hints.
type Footer struct {
	Hints []KeyHint
	Width int
}

// Render returns the styled footer string.
func (f Footer) Render() string {
	width := f.Width
	if width <= 0 {
		width = 80
	}

	keyStyle := lipgloss.NewStyle().Foreground(styles.AccentSoft).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)

	parts := make([]string, 0, len(f.Hints))
	for _, h := range f.Hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}

	content := strings.Join(parts, descStyle.Render(" • "))

	return lipgloss.NewStyle().
		Background(styles.BgDeep).
		Width(width).
		PaddingLeft(1).
		PaddingRight(1).
		Render(content)
}

// BrowseFooter is shown while navigating steps. onPlayground adds the hint
// for focusing the prompt box.
func BrowseFooter(width int, onPlayground bool) Footer {
	hints := []KeyHint{
		{Key: "←/→", Desc: "上一步/下一步"},
		{Key: "1-9", Desc: "跳转"},
	}
	if onPlayground {
		hints = append(hints, KeyHint{Key: "tab", Desc: "输入提示词"})
	}
	hints = append(hints, KeyHint{Key: "q", Desc: "退出"})
	return Footer{Hints: hints, Width: width}
}

// InputFooter is shown while the prompt box has focus.
func InputFooter(width int) Footer {
	return Footer{
		Hints: []KeyHint{
			{Key: "enter", Desc: "发送"},
			{Key: "alt+enter/ctrl+j", Desc: "换行"},
			{Key: "pgup/pgdn", Desc: "滚动"},
			{Key: "esc", Desc: "返回导航"},
		},
		Width: width,
	}
}

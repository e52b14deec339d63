// Package tutorial holds the fixed set of tutorial steps and the navigator
// that tracks which one is on screen.
package tutorial

// Icon identifies the glyph shown next to a step title.
type Icon int

const (
	IconBook Icon = iota
	IconKey
	IconChip
	IconPlay
)

// Glyph returns the terminal glyph for the icon.
func (i Icon) Glyph() string {
	switch i {
	case IconBook:
		return "📖"
	case IconKey:
		return "🔑"
	case IconChip:
		return "🧠"
	case IconPlay:
		return "▶"
	default:
		return "•"
	}
}

// Step is one page of the tutorial. Content is Markdown.
type Step struct {
	ID      string
	Title   string
	Icon    Icon
	Content string
}

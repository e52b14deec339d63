package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/aistudio-primer/internal/playground"
	"github.com/Dallionking/aistudio-primer/internal/tui/styles"
)

// EmptyTranscriptHint is shown before the first message.
const EmptyTranscriptHint = "这里是模拟的 AI Studio 运行环境。\n" +
	`在下方输入框尝试输入："给我讲个笑话" 或 "写一首关于春天的诗"。`

// Transcript is a scrollable chat log. It follows new messages until the user
// scrolls up, and resumes when scrolled back to the bottom.
type Transcript struct {
	messages   []playground.Message
	body       string // rendered messages, without the indicator
	pending    bool
	indicator  string
	viewport   viewport.Model
	autoScroll bool
	width      int
	height     int
}

// NewTranscript creates an empty transcript of the given size.
func NewTranscript(width, height int) Transcript {
	t := Transcript{
		viewport:   viewport.New(width, height),
		autoScroll: true,
		width:      width,
		height:     height,
	}
	t.refresh()
	return t
}

// SetSize resizes the viewport and re-wraps the content.
func (t *Transcript) SetSize(width, height int) {
	if width == t.width && height == t.height {
		return
	}
	t.width, t.height = width, height
	t.viewport.Width = width
	t.viewport.Height = height
	t.body = t.renderMessages()
	t.refresh()
}

// SetMessages replaces the rendered messages.
func (t *Transcript) SetMessages(msgs []playground.Message) {
	t.messages = msgs
	t.body = t.renderMessages()
	t.refresh()
}

// SetPending toggles the typing indicator shown below the last message.
// Only the indicator is redrawn; the messages keep their cached rendering.
func (t *Transcript) SetPending(pending bool, indicator string) {
	t.pending = pending
	t.indicator = indicator
	t.refresh()
}

// AutoScroll reports whether the view follows new content.
func (t Transcript) AutoScroll() bool { return t.autoScroll }

// Update handles page keys and mouse wheel scrolling. Other keys are ignored
// so typing in the prompt box never scrolls the log.
func (t Transcript) Update(msg tea.Msg) (Transcript, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "pgup":
			t.viewport.SetYOffset(t.viewport.YOffset - t.viewport.Height)
		case "pgdown":
			t.viewport.SetYOffset(t.viewport.YOffset + t.viewport.Height)
		case "end":
			t.viewport.GotoBottom()
		default:
			return t, nil
		}
	case tea.MouseMsg:
		t.viewport, cmd = t.viewport.Update(msg)
	default:
		return t, nil
	}

	t.autoScroll = t.viewport.AtBottom()
	return t, cmd
}

// View returns the rendered viewport.
func (t Transcript) View() string {
	return t.viewport.View()
}

func (t *Transcript) refresh() {
	t.viewport.SetContent(t.render())
	if t.autoScroll {
		t.viewport.GotoBottom()
	}
}

func (t *Transcript) bubbleWidth() int {
	return max(t.width*4/5, 16)
}

func (t *Transcript) render() string {
	if len(t.messages) == 0 && !t.pending {
		hint := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Width(t.width).
			Align(lipgloss.Center).
			Render("✦\n\n" + EmptyTranscriptHint)
		return lipgloss.PlaceVertical(t.height, lipgloss.Center, hint)
	}

	if !t.pending {
		return t.body
	}
	indicator := styles.ModelBubble.Render(t.indicator)
	if t.body == "" {
		return indicator
	}
	return t.body + "\n\n" + indicator
}

func (t *Transcript) renderMessages() string {
	blocks := make([]string, 0, len(t.messages))
	for _, m := range t.messages {
		blocks = append(blocks, t.renderMessage(m))
	}
	return strings.Join(blocks, "\n\n")
}

func (t *Transcript) renderMessage(m playground.Message) string {
	bw := t.bubbleWidth()
	label := styles.BubbleLabel.Render(m.Role.Label())

	if m.Role == playground.RoleUser {
		body := styles.UserBubble.Render(wrapText(m.Text, bw-2))
		block := lipgloss.JoinVertical(lipgloss.Right, label, body)
		return lipgloss.PlaceHorizontal(t.width, lipgloss.Right, block)
	}

	var body string
	if m.IsError {
		body = styles.ErrorBubble.Render(wrapText(m.Text, bw-4))
	} else {
		body = styles.ModelBubble.Render(RenderMarkdown(m.Text, bw-4))
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, body)
}

// wrapText hard-wraps s to width cells, keeping explicit newlines.
func wrapText(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

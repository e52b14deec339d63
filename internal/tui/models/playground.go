package models

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/aistudio-primer/internal/playground"
	"github.com/Dallionking/aistudio-primer/internal/tui/components"
	"github.com/Dallionking/aistudio-primer/internal/tui/styles"
)

const (
	playgroundTitle   = "✦ 模拟实验室 (Live Demo)"
	playgroundPill    = "Playground 预览"
	inputPlaceholder  = "在此输入提示词 (Prompt)..."
	inputHint         = "提示：按 Alt + Enter 或 Ctrl + J 换行，按 Enter 发送"
	thinkingLabel     = "思考中..."
	inputHeight       = 3
	playgroundChrome  = 4 // header (pill border included) + blank line
	inputChrome       = 2 // input border
	minTranscriptRows = 3
)

// replyMsg carries a finished completion back to the UI goroutine.
type replyMsg struct {
	result playground.Result
}

// PlaygroundModel is the live chat panel on the last tutorial step: a
// transcript, a multi-line prompt box and a typing indicator.
type PlaygroundModel struct {
	session   *playground.Session
	ctx       context.Context
	modelName string

	input      textarea.Model
	spin       spinner.Model
	transcript components.Transcript
	focused    bool

	width  int
	height int
}

// NewPlaygroundModel creates the panel for session. modelName is the
// display name of the backing model. Completions run under ctx.
func NewPlaygroundModel(ctx context.Context, session *playground.Session, modelName string) PlaygroundModel {
	if ctx == nil {
		ctx = context.Background()
	}

	ta := textarea.New()
	ta.Placeholder = inputPlaceholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Prompt = ""
	ta.SetHeight(inputHeight)
	// Enter submits; newlines are inserted by the panel itself.
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.AccentPrimary)

	p := PlaygroundModel{
		session:    session,
		ctx:        ctx,
		modelName:  modelName,
		input:      ta,
		spin:       s,
		transcript: components.NewTranscript(40, minTranscriptRows),
		width:      60,
		height:     20,
	}
	p.syncTranscript()
	return p
}

// Focused reports whether the prompt box has keyboard focus.
func (p PlaygroundModel) Focused() bool { return p.focused }

// Focus gives the prompt box keyboard focus.
func (p *PlaygroundModel) Focus() tea.Cmd {
	p.focused = true
	return p.input.Focus()
}

// Blur returns keyboard focus to step navigation. The draft is kept.
func (p *PlaygroundModel) Blur() {
	p.focused = false
	p.input.Blur()
}

// Value returns the current draft.
func (p PlaygroundModel) Value() string { return p.input.Value() }

// Pending reports whether a reply is outstanding.
func (p PlaygroundModel) Pending() bool { return p.session.Pending() }

// SetSize fits the panel into width x height cells.
func (p *PlaygroundModel) SetSize(width, height int) {
	p.width, p.height = width, height
	p.input.SetWidth(max(width-inputChrome, 10))

	rows := height - playgroundChrome - (inputHeight + inputChrome) - 1
	p.transcript.SetSize(width, max(rows, minTranscriptRows))
}

// Update handles replies, spinner ticks, mouse scrolling and, while
// focused, prompt editing.
func (p PlaygroundModel) Update(msg tea.Msg) (PlaygroundModel, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		if _, err := p.session.Settle(msg.result); err != nil {
			return p, nil
		}
		p.syncTranscript()
		return p, nil

	case spinner.TickMsg:
		if !p.session.Pending() {
			return p, nil
		}
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		p.transcript.SetPending(true, p.indicator())
		return p, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		p.transcript, cmd = p.transcript.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch msg.String() {
		case "enter":
			return p.submit()
		// Terminals deliver Shift+Enter as a bare CR, indistinguishable
		// from Enter, so only these two insert a line break.
		case "alt+enter", "ctrl+j":
			p.input.InsertString("\n")
			return p, nil
		case "pgup", "pgdown", "end":
			var cmd tea.Cmd
			p.transcript, cmd = p.transcript.Update(msg)
			return p, cmd
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

// submit admits the draft and starts the completion off the UI goroutine.
// Blank drafts and submits while a reply is pending leave everything as is.
func (p PlaygroundModel) submit() (PlaygroundModel, tea.Cmd) {
	req, err := p.session.Begin(p.input.Value())
	if err != nil {
		return p, nil
	}
	p.input.Reset()
	p.syncTranscript()
	return p, tea.Batch(callCmd(p.ctx, p.session, req), p.spin.Tick)
}

func callCmd(ctx context.Context, s *playground.Session, req playground.Request) tea.Cmd {
	return func() tea.Msg {
		return replyMsg{result: s.Call(ctx, req)}
	}
}

func (p *PlaygroundModel) indicator() string {
	return p.spin.View() + " " + styles.Dim(thinkingLabel)
}

func (p *PlaygroundModel) syncTranscript() {
	p.transcript.SetMessages(p.session.Transcript())
	p.transcript.SetPending(p.session.Pending(), p.indicator())
}

// View renders the panel header, transcript and prompt box.
func (p PlaygroundModel) View() string {
	title := lipgloss.NewStyle().Foreground(styles.AccentSoft).Bold(true).Render(playgroundTitle)
	model := styles.Label.Render(fmt.Sprintf("模型: %s", p.modelName))
	pill := styles.Pill.Render(playgroundPill)

	left := title + "  " + model
	gap := p.width - lipgloss.Width(left) - lipgloss.Width(pill)
	if gap < 1 {
		// Too narrow for the badge; keep the header height stable.
		left = styles.TruncateWithEllipsis(playgroundTitle, p.width)
		left = lipgloss.NewStyle().Foreground(styles.AccentSoft).Bold(true).Render(left)
		pill = "\n\n"
		gap = 0
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		left,
		lipgloss.NewStyle().Width(gap).Render(""),
		pill,
	)

	border := styles.BorderNormal
	if p.focused {
		border = styles.BorderFocused
	}
	box := lipgloss.NewStyle().
		Border(styles.RoundedBorder).
		BorderForeground(border).
		Render(p.input.View())

	hint := styles.Dim(inputHint)
	if p.session.Pending() {
		hint = styles.Amber(thinkingLabel)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		p.transcript.View(),
		box,
		hint,
	)
}

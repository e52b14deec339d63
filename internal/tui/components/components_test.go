package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/aistudio-primer/internal/playground"
	"github.com/Dallionking/aistudio-primer/internal/tutorial"
)

func TestSidebar_StepAt(t *testing.T) {
	s := Sidebar{Steps: tutorial.DefaultSteps(), Height: 30}
	top := s.navTop()

	for i := range s.Steps {
		got, ok := s.StepAt(2, top+i)
		require.True(t, ok, "row %d", i)
		assert.Equal(t, i, got)
	}

	_, ok := s.StepAt(2, top-1)
	assert.False(t, ok)
	_, ok = s.StepAt(2, top+len(s.Steps))
	assert.False(t, ok)
	_, ok = s.StepAt(SidebarWidth, top)
	assert.False(t, ok, "clicks right of the sidebar are not step clicks")
}

func TestSidebar_RenderRowsLineUpWithHitTest(t *testing.T) {
	s := Sidebar{Steps: tutorial.DefaultSteps(), Active: 1, Height: 30}
	lines := strings.Split(s.Render(), "\n")
	require.Greater(t, len(lines), s.navTop()+len(s.Steps))

	for i, step := range s.Steps {
		assert.Contains(t, lines[s.navTop()+i], step.Title)
	}
	assert.Equal(t, 30, lipgloss.Height(s.Render()))
	assert.Equal(t, SidebarWidth, lipgloss.Width(s.Render()))
}

func TestSidebar_ShowsTip(t *testing.T) {
	out := Sidebar{Steps: tutorial.DefaultSteps(), Height: 30}.Render()
	assert.Contains(t, out, "小贴士")
}

func TestStepNav(t *testing.T) {
	both := StepNav{HasPrev: true, HasNext: true, Width: 60}.Render()
	assert.Contains(t, both, prevLabel)
	assert.Contains(t, both, nextLabel)

	first := StepNav{HasNext: true, Width: 60}.Render()
	assert.NotContains(t, first, prevLabel)

	last := StepNav{HasPrev: true, Width: 60}.Render()
	assert.NotContains(t, last, nextLabel)
}

func TestProgressStep(t *testing.T) {
	out := ProgressStep{Total: 4, Current: 1}.Render()
	assert.Contains(t, out, "步骤 2/4")
	assert.Equal(t, 2, strings.Count(out, "●"))
	assert.Equal(t, 2, strings.Count(out, "○"))

	assert.Empty(t, ProgressStep{}.Render())
}

func TestFooter(t *testing.T) {
	out := BrowseFooter(100, true).Render()
	assert.Contains(t, out, "tab")
	assert.NotContains(t, BrowseFooter(100, false).Render(), "tab")
	input := InputFooter(100).Render()
	assert.Contains(t, input, "alt+enter/ctrl+j")
	assert.NotContains(t, input, "shift+enter")
}

func TestConfirmDialog(t *testing.T) {
	d := NewConfirmDialog("退出?", "仍在等待回复")
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, d.Done)
	assert.False(t, d.Confirmed, "no is preselected")

	d = NewConfirmDialog("退出?", "")
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyLeft})
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, d.Confirmed)

	d = NewConfirmDialog("退出?", "")
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	assert.True(t, d.Done)
	assert.True(t, d.Confirmed)
	assert.Contains(t, d.View(), "退出?")

	// A second ctrl+c force-confirms even with no selected.
	d = NewConfirmDialog("退出?", "")
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, d.Done)
	assert.True(t, d.Confirmed)
}

func TestTranscript_EmptyHint(t *testing.T) {
	tr := NewTranscript(60, 12)
	assert.Contains(t, tr.View(), "给我讲个笑话")
}

func TestTranscript_RendersMessages(t *testing.T) {
	tr := NewTranscript(60, 40)
	tr.SetMessages([]playground.Message{
		{Role: playground.RoleUser, Text: "你好"},
		{Role: playground.RoleModel, Text: "出错了", IsError: true},
	})
	out := tr.View()
	assert.Contains(t, out, "USER")
	assert.Contains(t, out, "你好")
	assert.Contains(t, out, "出错了")
	assert.NotContains(t, out, "给我讲个笑话")

	tr.SetPending(true, "...")
	assert.Contains(t, tr.View(), "...")
}

func TestTranscript_PendingKeepsRenderedMessages(t *testing.T) {
	tr := NewTranscript(60, 40)
	msgs := []playground.Message{
		{Role: playground.RoleUser, Text: "你好"},
		{Role: playground.RoleModel, Text: "first reply"},
	}
	tr.SetMessages(msgs)

	// Indicator frames redraw from the cached blocks, not from msgs.
	msgs[1].Text = "edited"
	for _, frame := range []string{"⠋ thinking", "⠙ thinking"} {
		tr.SetPending(true, frame)
		out := tr.View()
		assert.Contains(t, out, "你好")
		assert.Contains(t, out, "first reply")
		assert.NotContains(t, out, "edited")
		assert.Contains(t, out, frame)
	}

	tr.SetPending(false, "")
	assert.NotContains(t, tr.View(), "thinking")

	tr.SetMessages(msgs)
	assert.Contains(t, tr.View(), "edited")
}

func TestTranscript_PendingWithoutMessages(t *testing.T) {
	tr := NewTranscript(60, 12)
	tr.SetPending(true, "waiting")
	out := tr.View()
	assert.Contains(t, out, "waiting")
	assert.NotContains(t, out, "给我讲个笑话")
}

func TestTranscript_ScrollPausesAutoScroll(t *testing.T) {
	tr := NewTranscript(40, 4)
	var msgs []playground.Message
	for range 10 {
		msgs = append(msgs, playground.Message{Role: playground.RoleUser, Text: "line"})
	}
	tr.SetMessages(msgs)
	require.True(t, tr.AutoScroll())

	tr, _ = tr.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.False(t, tr.AutoScroll())

	tr, _ = tr.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.True(t, tr.AutoScroll())

	// Typing never scrolls.
	tr, _ = tr.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	assert.True(t, tr.AutoScroll())
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "short", wrapText("short", 20))
	wrapped := wrapText(strings.Repeat("word ", 10), 12)
	for _, l := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(l), 12)
	}
}

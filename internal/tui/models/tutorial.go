package models

import (
	"context"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/aistudio-primer/internal/playground"
	"github.com/Dallionking/aistudio-primer/internal/tui/components"
	"github.com/Dallionking/aistudio-primer/internal/tui/styles"
	"github.com/Dallionking/aistudio-primer/internal/tutorial"
)

const (
	quitTitle   = "退出教程？"
	quitMessage = "AI 仍在生成回复，退出后该回复将被丢弃。"
)

// TutorialOptions configures a TutorialModel.
type TutorialOptions struct {
	Navigator *tutorial.Navigator
	Session   *playground.Session
	ModelName string
	Context   context.Context
	Logger    *slog.Logger
}

// TutorialModel is the Bubble Tea model for the step-by-step primer: a
// sidebar of steps, the current step's content and, on the last step, the
// live playground.
type TutorialModel struct {
	nav        *tutorial.Navigator
	playground PlaygroundModel
	confirm    *components.ConfirmDialog
	logger     *slog.Logger

	width  int
	height int
}

// NewTutorialModel creates the model. The navigator's current step is the
// starting step.
func NewTutorialModel(opts TutorialOptions) TutorialModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m := TutorialModel{
		nav:        opts.Navigator,
		playground: NewPlaygroundModel(opts.Context, opts.Session, opts.ModelName),
		logger:     logger,
		width:      100,
		height:     30,
	}
	m.layout()
	return m
}

// ---------------------------------------------------------------------------
// Bubble Tea Interface
// ---------------------------------------------------------------------------

// Init implements tea.Model.
func (m TutorialModel) Init() tea.Cmd { return nil }

// Update handles all messages for the tutorial.
func (m TutorialModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if m.confirm != nil {
			return m.handleConfirmKey(msg)
		}
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.playground.Focused() {
			return m.handleInputKey(msg)
		}
		return m.handleBrowseKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Replies and spinner ticks belong to the playground, whichever step is
	// showing.
	var cmd tea.Cmd
	m.playground, cmd = m.playground.Update(msg)
	return m, cmd
}

// View renders the full tutorial screen.
func (m TutorialModel) View() string {
	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	sidebar := components.Sidebar{
		Steps:  m.nav.Steps(),
		Active: m.nav.Index(),
		Height: m.bodyHeight(),
	}.Render()

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, m.renderContent())
	return lipgloss.JoinVertical(lipgloss.Left, body, m.footer().Render())
}

// ---------------------------------------------------------------------------
// Keys
// ---------------------------------------------------------------------------

func (m TutorialModel) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		return m.quit()
	case "left", "h", "pgup":
		m.nav.Previous()
	case "right", "l", "pgdown", "enter":
		if key == "enter" && m.onPlayground() {
			return m, m.playground.Focus()
		}
		m.nav.Next()
	case "tab", "i":
		if m.onPlayground() {
			return m, m.playground.Focus()
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(key[0] - '1')
		if err := m.nav.SelectIndex(i); err != nil {
			m.logger.Debug("tutorial: ignoring step key", "key", key, "error", err)
		}
	}
	return m, nil
}

func (m TutorialModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.playground.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.playground, cmd = m.playground.Update(msg)
	return m, cmd
}

func (m TutorialModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d, cmd := m.confirm.Update(msg)
	if !d.Done {
		m.confirm = &d
		return m, cmd
	}
	m.confirm = nil
	if d.Confirmed {
		return m, tea.Quit
	}
	return m, nil
}

// quit exits immediately unless a reply is outstanding, in which case the
// user is asked first.
func (m TutorialModel) quit() (tea.Model, tea.Cmd) {
	if !m.playground.Pending() {
		return m, tea.Quit
	}
	d := components.NewConfirmDialog(quitTitle, quitMessage)
	m.confirm = &d
	return m, nil
}

// ---------------------------------------------------------------------------
// Mouse
// ---------------------------------------------------------------------------

func (m TutorialModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m, nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		sb := components.Sidebar{Steps: m.nav.Steps(), Height: m.bodyHeight()}
		if i, ok := sb.StepAt(msg.X, msg.Y); ok {
			if err := m.nav.SelectIndex(i); err == nil && !m.onPlayground() {
				m.playground.Blur()
			}
			return m, nil
		}
	}

	if m.onPlayground() && msg.X >= components.SidebarWidth {
		var cmd tea.Cmd
		m.playground, cmd = m.playground.Update(msg)
		return m, cmd
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Layout
// ---------------------------------------------------------------------------

func (m TutorialModel) onPlayground() bool {
	return m.nav.Current().ID == tutorial.PlaygroundStepID
}

func (m TutorialModel) bodyHeight() int {
	return max(m.height-1, 10)
}

// contentWidth is the usable width inside the content panel.
func (m TutorialModel) contentWidth() int {
	w := m.width - components.SidebarWidth - styles.Panel.GetHorizontalFrameSize()
	return max(w, 20)
}

// contentHeight is the usable height inside the content panel.
func (m TutorialModel) contentHeight() int {
	return max(m.bodyHeight()-styles.Panel.GetVerticalFrameSize(), 8)
}

// stepContent renders the current step's markdown for the content width.
func (m TutorialModel) stepContent() string {
	return components.RenderMarkdown(m.nav.Current().Content, m.contentWidth())
}

// layout resizes the playground to the space left under the playground
// step's intro text.
func (m *TutorialModel) layout() {
	intro := ""
	if step, ok := m.nav.Lookup(tutorial.PlaygroundStepID); ok {
		intro = components.RenderMarkdown(step.Content, m.contentWidth())
	}
	used := lipgloss.Height(intro) + progressRows + stepNavRows
	m.playground.SetSize(m.contentWidth(), m.contentHeight()-used)
}

const (
	progressRows = 2 // progress line + blank
	stepNavRows  = 4 // divider + bordered buttons
)

func (m TutorialModel) renderContent() string {
	w := m.contentWidth()
	h := m.contentHeight()

	progress := components.ProgressStep{Total: m.nav.Len(), Current: m.nav.Index()}.Render()
	nav := components.StepNav{
		HasPrev: m.nav.HasPrevious(),
		HasNext: m.nav.HasNext(),
		Width:   w,
	}.Render()

	mainRows := max(h-progressRows-stepNavRows, 1)
	var main string
	if m.onPlayground() {
		// The playground step keeps its short intro above the panel.
		main = lipgloss.JoinVertical(lipgloss.Left, m.stepContent(), m.playground.View())
	} else {
		main = m.stepContent()
	}
	main = lipgloss.NewStyle().Height(mainRows).Render(truncateToHeight(main, mainRows))

	content := lipgloss.JoinVertical(lipgloss.Left, progress, "", main, nav)

	panel := styles.Panel
	if m.playground.Focused() {
		panel = styles.PanelFocused
	}
	return panel.
		Width(w + styles.Panel.GetHorizontalPadding()).
		Height(h).
		Render(content)
}

func (m TutorialModel) footer() components.Footer {
	if m.playground.Focused() && m.onPlayground() {
		return components.InputFooter(m.width)
	}
	return components.BrowseFooter(m.width, m.onPlayground())
}

func truncateToHeight(s string, maxLines int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}
	return strings.Join(lines[:maxLines], "\n")
}

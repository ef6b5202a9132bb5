// Package textinput provides the single-line prompt used to name playlists
// and tracks and to enter track locations.
package textinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/frequency/internal/ui/styles"
)

const charLimit = 4096

// Result is delivered as a message when the prompt closes.
type Result struct {
	Text     string // trimmed
	Context  any    // passed through from Start
	Canceled bool
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// Model is a prompt wrapping a bubbles text input.
type Model struct {
	title   string
	input   textinput.Model
	context any
	active  bool
}

// New creates an inactive prompt.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = charLimit
	return Model{input: ti}
}

// Start opens the prompt with a title and initial text.
func (m *Model) Start(title, initial string, context any, width int) tea.Cmd {
	m.title = title
	m.context = context
	m.active = true
	m.input.Width = max(width-4, 10)
	m.input.SetValue(initial)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Active reports whether the prompt is open.
func (m Model) Active() bool {
	return m.active
}

// Update handles keys while the prompt is open. Enter and Esc close it and
// emit a Result.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return m.finish(Result{Canceled: true, Context: m.context})
		case tea.KeyEnter:
			return m.finish(Result{Text: strings.TrimSpace(m.input.Value()), Context: m.context})
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) finish(r Result) (Model, tea.Cmd) {
	m.active = false
	m.context = nil
	m.input.Blur()
	m.input.Reset()
	return m, func() tea.Msg { return r }
}

// View renders the prompt, or nothing when closed.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	return titleStyle().Render(m.title) + "\n" +
		m.input.View() + "\n" +
		hintStyle().Render("enter: confirm  esc: cancel")
}

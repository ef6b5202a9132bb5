package textinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func result(t *testing.T, cmd tea.Cmd) Result {
	t.Helper()
	require.NotNil(t, cmd)
	r, ok := cmd().(Result)
	require.True(t, ok, "expected Result message")
	return r
}

func TestPrompt_EnterReturnsTrimmedText(t *testing.T) {
	m := New()
	m.Start("New playlist", "", "ctx", 40)
	require.True(t, m.Active())

	m = typeText(m, "  Road trip ")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	r := result(t, cmd)
	assert.Equal(t, "Road trip", r.Text)
	assert.Equal(t, "ctx", r.Context)
	assert.False(t, r.Canceled)
	assert.False(t, m.Active())
}

func TestPrompt_InitialText(t *testing.T) {
	m := New()
	m.Start("Rename", "Old", nil, 40)
	m = typeText(m, "er")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Older", result(t, cmd).Text)
}

func TestPrompt_EscCancels(t *testing.T) {
	m := New()
	m.Start("Add track", "", 7, 40)
	m = typeText(m, "x")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	r := result(t, cmd)
	assert.True(t, r.Canceled)
	assert.Equal(t, 7, r.Context)
	assert.False(t, m.Active())
	assert.Empty(t, m.View())
}

func TestPrompt_InactiveIgnoresKeys(t *testing.T) {
	m := New()
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.Active())
}

func TestPrompt_ViewShowsTitle(t *testing.T) {
	m := New()
	m.Start("Rename playlist", "Mix", nil, 40)
	assert.Contains(t, m.View(), "Rename playlist")
	assert.Contains(t, m.View(), "Mix")
}

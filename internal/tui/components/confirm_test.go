package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, c Confirm, msg tea.KeyMsg) (Confirm, tea.Cmd) {
	t.Helper()
	m, cmd := c.Update(msg)
	next, ok := m.(Confirm)
	require.True(t, ok)
	return next, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestConfirm_YesKey(t *testing.T) {
	c, cmd := press(t, NewConfirm("Keep header?", "", false), runeKey('y'))

	assert.True(t, c.Submitted())
	assert.True(t, c.Confirmed())
	assert.NotNil(t, cmd)
}

func TestConfirm_NoKey(t *testing.T) {
	c, cmd := press(t, NewConfirm("Keep header?", "", true), runeKey('n'))

	assert.True(t, c.Submitted())
	assert.False(t, c.Confirmed())
	assert.NotNil(t, cmd)
}

func TestConfirm_EnterUsesDefault(t *testing.T) {
	yes, _ := press(t, NewConfirm("q", "", true), tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, yes.Confirmed())

	no, _ := press(t, NewConfirm("q", "", false), tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, no.Confirmed())
	assert.True(t, no.Submitted())
}

func TestConfirm_ToggleThenEnter(t *testing.T) {
	c, cmd := press(t, NewConfirm("q", "", false), tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.False(t, c.Submitted())

	c, _ = press(t, c, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, c.Confirmed())
}

func TestConfirm_Cancel(t *testing.T) {
	c, cmd := press(t, NewConfirm("q", "", true), tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, c.Cancelled())
	assert.False(t, c.Confirmed())
	assert.NotNil(t, cmd)
}

func TestConfirm_View(t *testing.T) {
	c := NewConfirm("Keep 3 header line(s)?", "// Copyright 2024\n// MIT", true)

	view := c.View()
	assert.Contains(t, view, "Keep 3 header line(s)?")
	assert.Contains(t, view, "Copyright 2024")
	assert.Contains(t, view, "Yes")
	assert.Contains(t, view, "No")
	assert.Contains(t, view, "enter confirm")

	assert.NotContains(t, c.WithShowHelp(false).View(), "enter confirm")

	done, _ := press(t, c, runeKey('y'))
	assert.Empty(t, done.View(), "prompt clears after answering")
}

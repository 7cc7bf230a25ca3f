package modal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

func TestNew_FocusesInputWhenPresent(t *testing.T) {
	m := New(Config{Title: "New note", Input: &InputConfig{Label: "Name"}})
	require.Equal(t, FieldInput, m.Focused())
	require.NotNil(t, m.Init())

	c := New(Config{Title: "Discard?"})
	require.Equal(t, FieldConfirm, c.Focused())
	require.Nil(t, c.Init())
}

func TestUpdate_SubmitInput(t *testing.T) {
	m := New(Config{Tag: "create", Title: "New note", Input: &InputConfig{Label: "Name"}})
	m = typeText(m, "  ideas ")
	require.Equal(t, "  ideas ", m.Value())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, SubmitMsg{Tag: "create", Value: "ideas"}, cmd())
}

func TestUpdate_EmptyInputBlocksSubmit(t *testing.T) {
	m := New(Config{Title: "Rename", Input: &InputConfig{}})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)

	allow := New(Config{Tag: "t", Title: "New", Input: &InputConfig{AllowEmpty: true}})
	_, cmd = allow.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, SubmitMsg{Tag: "t"}, cmd())
}

func TestUpdate_EscapeCancels(t *testing.T) {
	m := New(Config{Tag: "quit", Title: "Discard?"})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.Equal(t, CancelMsg{Tag: "quit"}, cmd())
}

func TestUpdate_FocusCycle(t *testing.T) {
	m := New(Config{Title: "x", Input: &InputConfig{}})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FieldConfirm, m.Focused())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FieldCancel, m.Focused())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FieldInput, m.Focused())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, FieldCancel, m.Focused())

	c := New(Config{Title: "y"})
	c, _ = c.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FieldCancel, c.Focused())
	c, _ = c.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FieldConfirm, c.Focused())
}

func TestUpdate_EnterOnCancelCancels(t *testing.T) {
	m := New(Config{Tag: "d", Title: "Delete?"})
	m, _ = m.Update(keyRunes("l"))
	require.Equal(t, FieldCancel, m.Focused())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, CancelMsg{Tag: "d"}, cmd())
}

func TestUpdate_YesNoShortcuts(t *testing.T) {
	m := New(Config{Tag: "d", Title: "Delete?"})

	_, cmd := m.Update(keyRunes("y"))
	require.Equal(t, SubmitMsg{Tag: "d"}, cmd())

	_, cmd = m.Update(keyRunes("n"))
	require.Equal(t, CancelMsg{Tag: "d"}, cmd())
}

func TestUpdate_ShortcutsTypeIntoInput(t *testing.T) {
	m := New(Config{Title: "Name", Input: &InputConfig{}})
	m = typeText(m, "yn")
	require.Equal(t, "yn", m.Value())
}

func TestView_RendersContent(t *testing.T) {
	m := New(Config{
		Title:        "Unsaved changes",
		Message:      "Discard edits to plan.md?",
		Details:      []string{"+3 -1 lines"},
		ConfirmLabel: "Discard",
		Variant:      ButtonDanger,
	})
	view := ansi.Strip(m.View())

	require.Contains(t, view, "Unsaved changes")
	require.Contains(t, view, "Discard edits to plan.md?")
	require.Contains(t, view, "+3 -1 lines")
	require.Contains(t, view, "Discard")
	require.Contains(t, view, "Cancel")
}

func TestView_InputLabelAndDefaultButton(t *testing.T) {
	m := New(Config{Title: "New note", Input: &InputConfig{Label: "Name", Value: "draft"}})
	view := ansi.Strip(m.View())

	require.Contains(t, view, "Name")
	require.Contains(t, view, "draft")
	require.Contains(t, view, "Save")
}

func TestOverlay_CentersOnBackground(t *testing.T) {
	m := New(Config{Title: "Hi"})
	m.SetSize(80, 30)

	bg := ""
	for i := 0; i < 30; i++ {
		if i > 0 {
			bg += "\n"
		}
		bg += "................................................................................"
	}
	out := ansi.Strip(m.Overlay(bg))
	require.Contains(t, out, "Hi")
	require.Contains(t, out, "....")
}

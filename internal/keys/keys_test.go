package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestBrowseKeyMap_Assignments(t *testing.T) {
	k := DefaultBrowseKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"open", k.Open, []string{"enter", "e"}},
		{"new", k.New, []string{"n"}},
		{"rename", k.Rename, []string{"R"}},
		{"filter", k.Filter, []string{"/"}},
		{"delete", k.Delete, []string{"D"}},
		{"reload", k.Reload, []string{"r"}},
		{"quit", k.Quit, []string{"q", "ctrl+c"}},
		{"log", k.ToggleLog, []string{"ctrl+x"}},
		{"down", k.Down, []string{"j", "down"}},
		{"up", k.Up, []string{"k", "up"}},
		{"top", k.Top, []string{"g", "home"}},
		{"bottom", k.Bottom, []string{"G", "end"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.keys, tt.binding.Keys())
			require.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestBrowseKeyMap_MatchesKeyMsg(t *testing.T) {
	k := DefaultBrowseKeyMap()

	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, k.Open))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("D")}, k.Delete))
	require.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, k.Delete))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, k.Quit))
}

func TestEditKeyMap_Save(t *testing.T) {
	k := DefaultEditKeyMap()
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlS}, k.Save))
	require.Equal(t, "ctrl+s", k.Save.Help().Key)
}

func TestHelpGroups(t *testing.T) {
	b := DefaultBrowseKeyMap()
	require.Len(t, b.ShortHelp(), 6)
	require.Len(t, b.FullHelp(), 4)

	e := DefaultEditKeyMap()
	require.Len(t, e.ShortHelp(), 3)
	require.Len(t, e.FullHelp()[0], 4)

	o := DefaultOutlineKeyMap()
	require.Len(t, o.ShortHelp(), 4)
}

func TestOutlineKeyMap(t *testing.T) {
	k := DefaultOutlineKeyMap()
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, k.Jump))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, k.Close))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlO}, k.Close))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, k.Down))

	e := DefaultEditKeyMap()
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlO}, e.Outline))
}

package outline

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestParse(t *testing.T) {
	lines := []string{
		"# Title",
		"intro",
		"## Section #",
		"#not a heading",
		"   ### Indented three",
		"    # code by indent",
		"```go",
		"# inside fence",
		"```",
		"####### seven",
		"###### Six",
		"# C#",
		"#",
		"~~~~",
		"## fenced with tildes",
		"```",
		"~~~~",
		"## After",
	}

	require.Equal(t, []Heading{
		{Level: 1, Title: "Title", Row: 0},
		{Level: 2, Title: "Section", Row: 2},
		{Level: 3, Title: "Indented three", Row: 4},
		{Level: 6, Title: "Six", Row: 10},
		{Level: 1, Title: "C#", Row: 11},
		{Level: 2, Title: "After", Row: 17},
	}, Parse(lines))
}

func TestParse_UnclosedFenceHidesRest(t *testing.T) {
	require.Equal(t, []Heading{{Level: 1, Title: "A", Row: 0}},
		Parse([]string{"# A", "```", "# B"}))
}

func TestParse_RowsAscendAndInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOf(rapid.SampledFrom([]string{
			"# h1", "## h2", "text", "```", "~~~", "", "### h3", "#x",
		})).Draw(t, "lines")

		prev := -1
		for _, h := range Parse(lines) {
			if h.Row <= prev || h.Row >= len(lines) {
				t.Fatalf("row %d out of order or range (prev %d, %d lines)", h.Row, prev, len(lines))
			}
			if h.Level < 1 || h.Level > 6 || h.Title == "" {
				t.Fatalf("bad heading %+v", h)
			}
			prev = h.Row
		}
	})
}

func sample() Model {
	m := New()
	m.SetSize(30, 10)
	return m.SetHeadings([]Heading{
		{Level: 1, Title: "Plan", Row: 0},
		{Level: 2, Title: "Goals", Row: 4},
		{Level: 2, Title: "Risks", Row: 9},
	})
}

func TestUpdate_WrapsAround(t *testing.T) {
	m := sample()

	m, _ = m.Update(runes("k"))
	h, _ := m.Selected()
	require.Equal(t, "Risks", h.Title, "up from the first wraps to the last")

	m, _ = m.Update(runes("j"))
	h, _ = m.Selected()
	require.Equal(t, "Plan", h.Title, "down from the last wraps to the first")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	h, _ = m.Selected()
	require.Equal(t, "Goals", h.Title)
}

func TestUpdate_EnterJumps(t *testing.T) {
	m := sample()
	m, _ = m.Update(runes("j"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, JumpMsg{Row: 4}, cmd())
}

func TestUpdate_Close(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlO}} {
		_, cmd := sample().Update(msg)
		require.NotNil(t, cmd)
		require.Equal(t, CloseMsg{}, cmd())
	}
}

func TestUpdate_EmptyOutline(t *testing.T) {
	m := New()
	m.SetSize(20, 5)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	m, cmd = m.Update(runes("j"))
	require.Nil(t, cmd)
	_, ok := m.Selected()
	require.False(t, ok)
	require.Contains(t, ansi.Strip(m.View()), "No headings")
}

func TestSelectRow(t *testing.T) {
	tests := []struct {
		row  int
		want string
	}{
		{0, "Plan"},
		{3, "Plan"},
		{4, "Goals"},
		{8, "Goals"},
		{50, "Risks"},
	}
	for _, tt := range tests {
		h, ok := sample().SelectRow(tt.row).Selected()
		require.True(t, ok)
		require.Equal(t, tt.want, h.Title, "row %d", tt.row)
	}

	m := New().SetHeadings([]Heading{{Level: 2, Title: "Late", Row: 5}})
	h, _ := m.SelectRow(1).Selected()
	require.Equal(t, "Late", h.Title, "rows above every heading select the first")
}

func TestSetHeadings_ClampsSelection(t *testing.T) {
	m := sample().SelectRow(9)
	m = m.SetHeadings([]Heading{{Level: 1, Title: "Only", Row: 0}})

	h, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, "Only", h.Title)
}

func TestView_IndentsByLevel(t *testing.T) {
	view := ansi.Strip(sample().View())

	require.Contains(t, view, "> Plan")
	require.Contains(t, view, "    Goals")
	require.Contains(t, view, "    Risks")
}

func TestView_ScrollsToSelection(t *testing.T) {
	m := sample()
	m.SetSize(30, 2)
	m, _ = m.Update(runes("k"))

	view := ansi.Strip(m.View())
	require.NotContains(t, view, "Plan")
	require.Contains(t, view, ">   Risks")
}

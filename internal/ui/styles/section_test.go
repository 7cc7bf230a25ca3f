package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestSection(t *testing.T) {
	focusColor := lipgloss.Color("#54A0FF")

	tests := []struct {
		name    string
		content []string
		title   string
		hint    string
		width   int
		want    []string
		notWant []string
	}{
		{
			name:    "title inline in top border",
			content: []string{"  new-note"},
			title:   "Name",
			width:   30,
			want:    []string{"╭─ Name", "│", "new-note", "╰", "╯"},
		},
		{
			name:    "hint in parentheses",
			content: []string{"  x"},
			title:   "Name",
			hint:    ".md added",
			width:   40,
			want:    []string{"╭─ Name", "(.md added)"},
		},
		{
			name:    "no title",
			content: []string{"body"},
			width:   20,
			want:    []string{"╭", "╮", "body"},
			notWant: []string{"╭─ "},
		},
		{
			name:    "narrow width",
			content: []string{"X"},
			title:   "T",
			width:   3,
			want:    []string{"╭", "╮", "╰", "╯"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Section{Title: tt.title, Hint: tt.hint, Rows: tt.content, Width: tt.width, Accent: focusColor}.Render()
			for _, w := range tt.want {
				require.Contains(t, got, w)
			}
			for _, nw := range tt.notWant {
				require.NotContains(t, got, nw)
			}
		})
	}
}

func TestSection_PadsContentToWidth(t *testing.T) {
	got := Section{Title: "Title", Rows: []string{"Short", "A longer line"}, Width: 30}.Render()

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		require.Equal(t, 30, lipgloss.Width(line), line)
	}
}

func TestSection_EmptyContent(t *testing.T) {
	got := Section{Title: "Title", Width: 20}.Render()

	require.Contains(t, got, "╭─ Title")
	require.Contains(t, got, "╰")
}

func TestSection_FocusChangesColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	focusColor := lipgloss.Color("#54A0FF")
	sec := Section{Title: "Test", Rows: []string{"Content"}, Width: 30, Accent: focusColor}
	unfocused := sec.Render()
	sec.Focused = true
	focused := sec.Render()

	require.NotEqual(t, unfocused, focused)
}

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Section is a rounded box whose title sits inside the top edge:
//
//	╭─ Name (hint) ─────╮
//	│ content           │
//	╰───────────────────╯
type Section struct {
	Title string
	Hint  string
	Rows  []string
	// Width is the outer width, borders included.
	Width   int
	Focused bool
	// Accent colors the border and title while focused.
	Accent lipgloss.TerminalColor
}

// Render draws the section. Rows narrower than the box are padded so the
// right edge lines up.
func (s Section) Render() string {
	edge := lipgloss.RoundedBorder()

	var color lipgloss.TerminalColor = BorderDefaultColor
	if s.Focused && s.Accent != nil {
		color = s.Accent
	}
	line := lipgloss.NewStyle().Foreground(color)
	inner := max(s.Width-2, 1)

	out := make([]string, 0, len(s.Rows)+2)
	out = append(out, s.top(edge, line, color, inner))
	for _, row := range s.Rows {
		gap := max(inner-lipgloss.Width(row), 0)
		out = append(out, line.Render(edge.Left)+row+strings.Repeat(" ", gap)+line.Render(edge.Right))
	}
	out = append(out, line.Render(edge.BottomLeft+strings.Repeat(edge.Bottom, inner)+edge.BottomRight))
	return strings.Join(out, "\n")
}

func (s Section) top(edge lipgloss.Border, line lipgloss.Style, color lipgloss.TerminalColor, inner int) string {
	if s.Title == "" {
		return line.Render(edge.TopLeft + strings.Repeat(edge.Top, inner) + edge.TopRight)
	}

	label := lipgloss.NewStyle().Bold(true).Foreground(color).Render(s.Title)
	used := lipgloss.Width(s.Title)
	if s.Hint != "" {
		label += " " + HintStyle.Render("("+s.Hint+")")
		used += len(" (") + lipgloss.Width(s.Hint) + len(")")
	}
	// "─ " before the label and " " after it.
	fill := max(inner-used-3, 0)
	return line.Render(edge.TopLeft+edge.Top+" ") + label +
		line.Render(" "+strings.Repeat(edge.Top, fill)+edge.TopRight)
}

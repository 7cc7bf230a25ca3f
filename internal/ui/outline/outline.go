// Package outline lists the headings of the note being edited and jumps to
// them.
package outline

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/folio/internal/keys"
	"github.com/zjrosen/folio/internal/ui/styles"
)

// Heading is one ATX heading.
type Heading struct {
	Level int // 1-6
	Title string
	Row   int // 0-based line
}

// JumpMsg asks the owner to move the editor cursor to Row.
type JumpMsg struct {
	Row int
}

// CloseMsg asks the owner to hide the outline.
type CloseMsg struct{}

// Parse returns the ATX headings in lines. Lines inside fenced code blocks
// are skipped, and a closing run of #s is dropped from the title.
func Parse(lines []string) []Heading {
	var out []Heading
	var fence string
	for row, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if len(line)-len(trimmed) > 3 {
			continue
		}
		if f := fenceOf(trimmed); f != "" {
			switch {
			case fence == "":
				fence = f
			case strings.HasPrefix(f, fence[:1]) && len(f) >= len(fence) && strings.TrimSpace(trimmed[len(f):]) == "":
				fence = ""
			}
			continue
		}
		if fence != "" {
			continue
		}
		if h, ok := parseHeading(trimmed); ok && h.Title != "" {
			h.Row = row
			out = append(out, h)
		}
	}
	return out
}

// fenceOf returns the run of ``` or ~~~ opening line, if any.
func fenceOf(line string) string {
	for _, c := range []byte{'`', '~'} {
		n := 0
		for n < len(line) && line[n] == c {
			n++
		}
		if n >= 3 {
			return line[:n]
		}
	}
	return ""
}

func parseHeading(line string) (Heading, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return Heading{}, false
	}
	rest := line[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return Heading{}, false
	}
	title := strings.TrimSpace(rest)
	if closed := strings.TrimRight(title, "#"); closed != title {
		if closed == "" || strings.HasSuffix(closed, " ") || strings.HasSuffix(closed, "\t") {
			title = strings.TrimSpace(closed)
		}
	}
	return Heading{Level: level, Title: title}, true
}

// Model is the heading list.
type Model struct {
	headings []Heading
	selected int
	offset   int
	width    int
	height   int
	keys     keys.OutlineKeyMap
}

// New creates an empty outline.
func New() Model {
	return Model{keys: keys.DefaultOutlineKeyMap()}
}

// SetHeadings replaces the list, keeping the selected index in range.
func (m Model) SetHeadings(h []Heading) Model {
	m.headings = h
	m.selected = max(0, min(m.selected, len(h)-1))
	m.clampOffset()
	return m
}

// Headings returns the listed headings.
func (m Model) Headings() []Heading {
	return m.headings
}

// SelectRow selects the section containing row: the last heading at or
// above it, or the first heading when row precedes them all.
func (m Model) SelectRow(row int) Model {
	m.selected = 0
	for i, h := range m.headings {
		if h.Row > row {
			break
		}
		m.selected = i
	}
	m.clampOffset()
	return m
}

// Selected returns the highlighted heading.
func (m Model) Selected() (Heading, bool) {
	if m.selected < 0 || m.selected >= len(m.headings) {
		return Heading{}, false
	}
	return m.headings[m.selected], true
}

// SetSize sets the inner size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampOffset()
}

// Update moves through the headings, wrapping at either end. Enter sends
// JumpMsg for the selection.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n := len(m.headings)
	switch {
	case key.Matches(keyMsg, m.keys.Close):
		return m, func() tea.Msg { return CloseMsg{} }
	case n == 0:
		return m, nil
	case key.Matches(keyMsg, m.keys.Down):
		m.selected = (m.selected + 1) % n
	case key.Matches(keyMsg, m.keys.Up):
		m.selected = (m.selected - 1 + n) % n
	case key.Matches(keyMsg, m.keys.Jump):
		row := m.headings[m.selected].Row
		return m, func() tea.Msg { return JumpMsg{Row: row} }
	default:
		return m, nil
	}
	m.clampOffset()
	return m, nil
}

func (m *Model) clampOffset() {
	visible := max(m.height, 1)
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visible {
		m.offset = m.selected - visible + 1
	}
	m.offset = max(0, min(m.offset, len(m.headings)-visible))
}

// View renders the visible headings, indented by level.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if len(m.headings) == 0 {
		return styles.HintStyle.Render(truncate.StringWithTail("No headings", uint(m.width), "…"))
	}

	var rows []string
	end := min(len(m.headings), m.offset+max(m.height, 1))
	for i := m.offset; i < end; i++ {
		h := m.headings[i]
		indent := strings.Repeat("  ", min(h.Level, 4)-1)
		width := uint(max(m.width-2-len(indent), 1))
		title := truncate.StringWithTail(h.Title, width, "…")

		if i == m.selected {
			rows = append(rows, styles.SelectionIndicatorStyle.Render(">")+" "+indent+styles.SidebarSelectedStyle.Render(title))
		} else {
			rows = append(rows, "  "+indent+styles.SidebarTitleStyle.Render(title))
		}
	}
	return strings.Join(rows, "\n")
}

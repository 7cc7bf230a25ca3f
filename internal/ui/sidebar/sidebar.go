// Package sidebar renders the note list.
package sidebar

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
	"github.com/sahilm/fuzzy"

	"github.com/zjrosen/folio/internal/keys"
	"github.com/zjrosen/folio/internal/notes"
	"github.com/zjrosen/folio/internal/ui/styles"
)

// rowsPerNote is the title line plus the meta line.
const rowsPerNote = 2

// SelectMsg is sent when the highlighted note changes.
type SelectMsg struct {
	Path string
}

// Model is the note list state.
type Model struct {
	notes []notes.Note
	// shown indexes the notes that pass the filter, in list order.
	// selected and offset index shown.
	shown    []int
	selected int
	offset   int
	width    int
	height   int
	keys     keys.BrowseKeyMap
	now      func() time.Time

	filter    textinput.Model
	filtering bool // the query line has focus
}

// New creates an empty list.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter notes"
	return Model{
		keys:   keys.DefaultBrowseKeyMap(),
		now:    time.Now,
		filter: ti,
	}
}

// SetNotes replaces the list, keeping the selection on the same path when
// it still exists. An active filter is applied to the new list.
func (m Model) SetNotes(list []notes.Note) Model {
	current, had := m.Selected()
	m.notes = list
	m.refilter()
	m.selected = 0
	if had {
		m = m.SelectPath(current.Path)
	}
	m.selected = min(m.selected, max(len(m.shown)-1, 0))
	m.clampOffset()
	return m
}

// Notes returns every note, filtered or not.
func (m Model) Notes() []notes.Note {
	return m.notes
}

// Count returns how many notes pass the filter and how many there are.
func (m Model) Count() (shown, total int) {
	return len(m.shown), len(m.notes)
}

// SelectPath moves the selection to path if it is shown.
func (m Model) SelectPath(path string) Model {
	for i, idx := range m.shown {
		if m.notes[idx].Path == path {
			m.selected = i
			m.clampOffset()
			break
		}
	}
	return m
}

// Selected returns the highlighted note.
func (m Model) Selected() (notes.Note, bool) {
	if m.selected < 0 || m.selected >= len(m.shown) {
		return notes.Note{}, false
	}
	return m.notes[m.shown[m.selected]], true
}

// SetSize sets the inner size of the list.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.filter.Width = max(width-2, 1)
	m.clampOffset()
}

// Filtering reports whether the query line has focus. The owner should
// send every key here while it does.
func (m Model) Filtering() bool {
	return m.filtering
}

// Filtered reports whether a query is narrowing the list.
func (m Model) Filtered() bool {
	return strings.TrimSpace(m.filter.Value()) != ""
}

// Query is the current filter text.
func (m Model) Query() string {
	return m.filter.Value()
}

// StartFilter focuses the query line, keeping any previous query.
func (m Model) StartFilter() (Model, tea.Cmd) {
	m.filtering = true
	m.filter.CursorEnd()
	m.clampOffset()
	return m, m.filter.Focus()
}

// ClearFilter drops the query and shows every note again, keeping the
// selected note.
func (m Model) ClearFilter() (Model, tea.Cmd) {
	prev, had := m.Selected()
	m.filtering = false
	m.filter.Blur()
	m.filter.SetValue("")
	m.refilter()
	if had {
		m = m.SelectPath(prev.Path)
	}
	m.clampOffset()
	return m, m.selectionChanged(prev.Path, had)
}

// Update handles navigation keys and mouse selection. While filtering,
// keys edit the query instead; enter keeps it and esc clears it.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.filtering {
		if msg, ok := msg.(tea.KeyMsg); ok {
			return m.updateFilter(msg)
		}
	}

	prev := m.selected

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Down):
			m.selected++
		case key.Matches(msg, m.keys.Up):
			m.selected--
		case key.Matches(msg, m.keys.Top):
			m.selected = 0
		case key.Matches(msg, m.keys.Bottom):
			m.selected = len(m.shown) - 1
		default:
			return m, nil
		}

	case tea.MouseMsg:
		switch {
		case msg.Button == tea.MouseButtonWheelDown:
			m.selected++
		case msg.Button == tea.MouseButtonWheelUp:
			m.selected--
		case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
			if i, ok := m.hit(msg); ok {
				m.selected = i
			}
		default:
			return m, nil
		}

	default:
		return m, nil
	}

	m.selected = max(0, min(m.selected, len(m.shown)-1))
	m.clampOffset()
	if m.selected == prev || len(m.shown) == 0 {
		return m, nil
	}
	path := m.notes[m.shown[m.selected]].Path
	return m, func() tea.Msg { return SelectMsg{Path: path} }
}

func (m Model) updateFilter(msg tea.KeyMsg) (Model, tea.Cmd) {
	prev, had := m.Selected()

	switch msg.Type {
	case tea.KeyEsc:
		return m.ClearFilter()
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		m.clampOffset()
		return m, nil
	case tea.KeyDown, tea.KeyCtrlN:
		m.selected = min(m.selected+1, max(len(m.shown)-1, 0))
	case tea.KeyUp, tea.KeyCtrlP:
		m.selected = max(m.selected-1, 0)
	default:
		query := m.filter.Value()
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		if m.filter.Value() == query {
			return m, cmd
		}
		m.refilter()
		m.selected = 0
		m.clampOffset()
		return m, tea.Batch(cmd, m.selectionChanged(prev.Path, had))
	}

	m.clampOffset()
	return m, m.selectionChanged(prev.Path, had)
}

// selectionChanged returns a SelectMsg command when the highlighted note is
// no longer prev.
func (m Model) selectionChanged(prev string, had bool) tea.Cmd {
	n, ok := m.Selected()
	if !ok || (had && n.Path == prev) {
		return nil
	}
	path := n.Path
	return func() tea.Msg { return SelectMsg{Path: path} }
}

// noteSource matches against title and path together.
type noteSource []notes.Note

func (s noteSource) String(i int) string { return s[i].Title + " " + s[i].Path }
func (s noteSource) Len() int            { return len(s) }

// refilter rebuilds shown from the query. Matches stay in path order so
// the list does not jump around while typing.
func (m *Model) refilter() {
	shown := make([]int, 0, len(m.notes))
	query := strings.TrimSpace(m.filter.Value())
	if query == "" {
		for i := range m.notes {
			shown = append(shown, i)
		}
		m.shown = shown
		return
	}
	for _, match := range fuzzy.FindFrom(query, noteSource(m.notes)) {
		shown = append(shown, match.Index)
	}
	slices.Sort(shown)
	m.shown = shown
}

// hit finds the visible note under a mouse event.
func (m Model) hit(msg tea.MouseMsg) (int, bool) {
	for i := m.offset; i < min(len(m.shown), m.offset+m.visibleCount()); i++ {
		if z := zone.Get(zoneID(i)); z != nil && z.InBounds(msg) {
			return i, true
		}
	}
	return 0, false
}

func zoneID(i int) string {
	return fmt.Sprintf("sidebar-note-%d", i)
}

// showQuery reports whether the query line takes the top row.
func (m Model) showQuery() bool {
	return m.filtering || m.Filtered()
}

func (m Model) listHeight() int {
	if m.showQuery() {
		return m.height - 1
	}
	return m.height
}

func (m Model) visibleCount() int {
	return max(m.listHeight()/rowsPerNote, 1)
}

func (m *Model) clampOffset() {
	visible := m.visibleCount()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visible {
		m.offset = m.selected - visible + 1
	}
	m.offset = max(0, min(m.offset, len(m.shown)-visible))
}

// View renders the visible notes. Each row is a bubblezone mark; the
// caller scans the final frame.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var rows []string
	if m.showQuery() {
		rows = append(rows, m.filter.View())
	}
	switch {
	case len(m.notes) == 0:
		rows = append(rows, m.hint("No notes yet. Press n to create one."))
	case len(m.shown) == 0:
		rows = append(rows, m.hint("No notes match."))
	default:
		end := min(len(m.shown), m.offset+m.visibleCount())
		for i := m.offset; i < end; i++ {
			rows = append(rows, zone.Mark(zoneID(i), m.renderNote(i)))
		}
	}
	return strings.Join(rows, "\n")
}

func (m Model) hint(text string) string {
	return styles.HintStyle.Render(truncate.StringWithTail(text, uint(m.width), "…"))
}

func (m Model) renderNote(i int) string {
	n := m.notes[m.shown[i]]
	width := uint(max(m.width-2, 1))

	prefix, titleStyle := "  ", styles.SidebarTitleStyle
	if i == m.selected {
		prefix, titleStyle = styles.SelectionIndicatorStyle.Render(">")+" ", styles.SidebarSelectedStyle
	}

	title := titleStyle.Render(truncate.StringWithTail(n.Title, width, "…"))
	meta := styles.SidebarMetaStyle.Render(truncate.StringWithTail(m.meta(n), width, "…"))
	return prefix + title + "\n  " + meta
}

// meta is the second row: directory, age and size.
func (m Model) meta(n notes.Note) string {
	parts := []string{}
	if dir := dirOf(n.Path); dir != "" {
		parts = append(parts, dir)
	}
	parts = append(parts,
		humanize.RelTime(n.ModTime, m.now(), "ago", "from now"),
		humanize.Bytes(uint64(max(n.Size, 0))),
	)
	return strings.Join(parts, " · ")
}

func dirOf(rel string) string {
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		return rel[:i]
	}
	return ""
}

package noteeditor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/folio/internal/editor"
	"github.com/zjrosen/folio/internal/ui/styles"
)

// cellKind is everything that decides how a cell is drawn.
type cellKind struct {
	class    TokenClass
	selected bool
	pending  bool
	cursor   bool
}

type cell struct {
	text  string
	width int
	kind  cellKind
}

// View renders the visible window of the document.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	snap := m.engine.Snapshot()
	spans := m.cache.get(m.lexer, snap.Lines)
	gutter := m.gutterWidth(len(snap.Lines))
	cw := max(m.width-gutter, 1)

	rows := make([]string, 0, m.height)
	for i := range m.height {
		row := m.yOffset + i
		if row >= len(snap.Lines) {
			rows = append(rows, m.renderGutter(-1, gutter, snap.Cursor.Row))
			continue
		}
		var lineSpans []Span
		if row < len(spans) {
			lineSpans = spans[row]
		}
		cells := m.lineCells(snap, row, lineSpans)
		rows = append(rows, m.renderGutter(row, gutter, snap.Cursor.Row)+renderCells(cells, m.xOffset, cw))
	}
	return strings.Join(rows, "\n")
}

func (m Model) gutterWidth(lineCount int) int {
	if !m.lineNumbers {
		return 0
	}
	return len(fmt.Sprint(max(lineCount, 1))) + 1
}

func (m Model) contentWidth(lineCount int) int {
	return m.width - m.gutterWidth(lineCount)
}

// renderGutter draws the line number column. row < 0 marks a line past
// the end of the document.
func (m Model) renderGutter(row, width, cursorRow int) string {
	if width == 0 {
		return ""
	}
	if row < 0 {
		return styles.LineNumberStyle.Render(fmt.Sprintf("%*s ", width-1, "~"))
	}
	label := fmt.Sprintf("%*d ", width-1, row+1)
	if row == cursorRow {
		return styles.CurrentLineNumberStyle.Render(label)
	}
	return styles.LineNumberStyle.Render(label)
}

// lineCells splits a line into display cells tagged with highlight,
// selection, pending and cursor state.
func (m Model) lineCells(snap editor.Snapshot, row int, spans []Span) []cell {
	line := snap.Lines[row]
	cells := make([]cell, 0, len(line)+1)

	col := 0
	span := 0
	state := -1
	rest := line
	for len(rest) > 0 {
		var g string
		g, rest, _, state = uniseg.StepString(rest, state)

		for span < len(spans) && spans[span].End <= col {
			span++
		}
		kind := cellKind{}
		if span < len(spans) && spans[span].Start <= col {
			kind.class = spans[span].Class
		}
		m.markCell(&kind, snap, row, col)
		cells = append(cells, m.makeCell(g, kind))
		col++
	}

	// The column past the last character shows the cursor at line end and
	// a selected or pending line break.
	tail := cellKind{}
	m.markCell(&tail, snap, row, col)
	breakCovered := row+1 < len(snap.Lines) && (tail.selected || tail.pending)
	if tail.cursor || breakCovered {
		cells = append(cells, cell{text: " ", width: 1, kind: tail})
	}
	return cells
}

func (m Model) markCell(kind *cellKind, snap editor.Snapshot, row, col int) {
	p := editor.Position{Row: row, Col: col}
	kind.cursor = m.focused && snap.Cursor == p
	kind.selected = snap.Selection != nil && inRange(*snap.Selection, p)
	kind.pending = snap.Pending != nil && inRange(*snap.Pending, p)
}

func (m Model) makeCell(g string, kind cellKind) cell {
	if g == "\t" {
		return cell{text: strings.Repeat(" ", m.tabWidth), width: m.tabWidth, kind: kind}
	}
	w := runewidth.StringWidth(g)
	if w == 0 {
		// Control characters render as a visible placeholder.
		return cell{text: "·", width: 1, kind: kind}
	}
	return cell{text: g, width: w, kind: kind}
}

// inRange reports whether p lies in the half-open range r.
func inRange(r editor.Range, p editor.Position) bool {
	r = r.Normalized()
	return !p.Before(r.Start) && p.Before(r.End)
}

// renderCells draws the cells that fall inside [xOffset, xOffset+width),
// grouping runs of identical styling into one render call.
func renderCells(cells []cell, xOffset, width int) string {
	var out strings.Builder
	var run strings.Builder
	var runKind cellKind
	flush := func() {
		if run.Len() > 0 {
			out.WriteString(styleFor(runKind).Render(run.String()))
			run.Reset()
		}
	}

	x := 0
	for _, c := range cells {
		start := x
		x += c.width
		if x <= xOffset {
			continue
		}
		if start-xOffset+c.width > width {
			break
		}
		text := c.text
		if start < xOffset {
			// Wide character cut by the left edge.
			text = strings.Repeat(" ", x-xOffset)
		}
		if c.kind != runKind {
			flush()
			runKind = c.kind
		}
		run.WriteString(text)
	}
	flush()
	return ansi.Truncate(out.String(), width, "")
}

func styleFor(k cellKind) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch k.class {
	case ClassHeading:
		s = s.Foreground(styles.MarkdownHeadingColor).Bold(true)
	case ClassEmphasis:
		s = s.Foreground(styles.MarkdownEmphasisColor).Italic(true)
	case ClassCode:
		s = s.Foreground(styles.MarkdownCodeColor)
	case ClassLink:
		s = s.Foreground(styles.MarkdownLinkColor).Underline(true)
	case ClassList:
		s = s.Foreground(styles.MarkdownListColor)
	case ClassQuote:
		s = s.Foreground(styles.MarkdownQuoteColor).Italic(true)
	default:
		s = s.Foreground(styles.TextPrimaryColor)
	}
	switch {
	case k.pending:
		s = s.Background(styles.EditorPendingColor)
	case k.selected:
		s = s.Background(styles.EditorSelectionColor)
	}
	if k.cursor {
		s = s.Reverse(true)
	}
	return s
}

// displayColumn is the screen column of grapheme col in line.
func displayColumn(line string, col, tabWidth int) int {
	x := 0
	i := 0
	state := -1
	for len(line) > 0 && i < col {
		var g string
		g, line, _, state = uniseg.StepString(line, state)
		switch w := runewidth.StringWidth(g); {
		case g == "\t":
			x += tabWidth
		case w == 0:
			x++
		default:
			x += w
		}
		i++
	}
	return x + (col - i)
}

// Package preview shows the rendered markdown of the selected note.
package preview

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/folio/internal/cachemanager"
	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/notes"
	"github.com/zjrosen/folio/internal/ui/markdown"
	"github.com/zjrosen/folio/internal/ui/shared/panes"
	"github.com/zjrosen/folio/internal/ui/styles"
)

// RenderTTL is how long a rendered note stays cached.
const RenderTTL = 10 * time.Minute

type renderInput struct {
	content string
	width   int
}

// Model is the preview pane.
type Model struct {
	viewport viewport.Model
	style    string
	renders  *cachemanager.ReadThroughCache[string, string, renderInput]

	doc    notes.Document
	hasDoc bool
	err    error

	width  int
	height int
}

// New creates an empty preview. style is a resolved glamour style, "dark"
// or "light". Renders are cached in cache keyed by fingerprint and width.
func New(style string, cache cachemanager.CacheManager[string, string]) Model {
	m := Model{
		viewport: viewport.New(0, 0),
		style:    style,
	}
	m.renders = cachemanager.NewReadThroughCache(cache, func(_ context.Context, in renderInput) (string, error) {
		r, err := markdown.New(in.width, style)
		if err != nil {
			return "", err
		}
		return r.Render(in.content)
	}, false)
	return m
}

// SetDocument shows doc, keeping the scroll position when the same note is
// re-shown.
func (m Model) SetDocument(doc notes.Document) Model {
	samePath := m.hasDoc && m.doc.Path == doc.Path
	offset := m.viewport.YOffset

	m.doc = doc
	m.hasDoc = true
	m.refresh()

	if samePath {
		m.viewport.SetYOffset(offset)
	} else {
		m.viewport.GotoTop()
	}
	return m
}

// Clear empties the pane.
func (m Model) Clear() Model {
	m.doc = notes.Document{}
	m.hasDoc = false
	m.err = nil
	m.viewport.SetContent("")
	return m
}

// Path returns the shown note, or "" when empty.
func (m Model) Path() string {
	return m.doc.Path
}

// Err returns the last render error.
func (m Model) Err() error {
	return m.err
}

// SetSize sets the inner size and re-renders for the new width.
func (m *Model) SetSize(width, height int) {
	if width == m.width && height == m.height {
		return
	}
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.refresh()
}

func (m *Model) refresh() {
	if !m.hasDoc || m.width <= 0 {
		return
	}
	key := fmt.Sprintf("%s:%d:%s", m.doc.Fingerprint, m.width, m.style)
	out, err := m.renders.Get(context.Background(), key, renderInput{content: m.doc.Content, width: m.width}, RenderTTL)
	if err != nil {
		log.ErrorErr(log.CatUI, "markdown render failed", err, "path", m.doc.Path)
		m.err = err
		m.viewport.SetContent(m.doc.Content)
		return
	}
	m.err = nil
	m.viewport.SetContent(out)
}

// HalfPageDown scrolls down half a screen.
func (m *Model) HalfPageDown() {
	m.viewport.HalfPageDown()
}

// HalfPageUp scrolls up half a screen.
func (m *Model) HalfPageUp() {
	m.viewport.HalfPageUp()
}

// Update forwards mouse wheel scrolling to the viewport.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(tea.MouseMsg); !ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// ScrollIndicator is the position label for the pane border.
func (m Model) ScrollIndicator() string {
	return panes.ScrollIndicator(m.viewport)
}

// View renders the pane body.
func (m Model) View() string {
	if !m.hasDoc {
		return styles.HintStyle.Render("Nothing selected")
	}
	return m.viewport.View()
}

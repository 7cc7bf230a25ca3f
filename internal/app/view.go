package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/folio/internal/ui/shared/panes"
	"github.com/zjrosen/folio/internal/ui/styles"
)

const (
	minSidebarWidth = 20
	minPreviewWidth = 20
	minOutlineWidth = 20
	minEditorWidth  = 30
)

// sidebarWidth is the outer width of the note list pane.
func (m Model) sidebarWidth() int {
	if !m.cfg.UI.ShowPreview {
		return m.width
	}
	w := m.cfg.UI.SidebarWidth
	if w <= 0 {
		w = m.width / 3
	}
	if m.width < minSidebarWidth+minPreviewWidth {
		return m.width / 2
	}
	return min(max(w, minSidebarWidth), m.width-minPreviewWidth)
}

// outlineWidth is the outer width of the outline pane, zero when closed.
func (m Model) outlineWidth() int {
	if m.mode != ModeEdit || !m.outlineOpen || m.width < minOutlineWidth+minEditorWidth {
		return 0
	}
	return min(max(m.width/4, minOutlineWidth), m.width-minEditorWidth)
}

func (m Model) keyMap() help.KeyMap {
	switch {
	case m.outlineFocused():
		return m.outlineKeys
	case m.mode == ModeEdit:
		return m.editKeys
	}
	return m.browseKeys
}

// bodyHeight is what remains for the panes once the footer is drawn.
func (m Model) bodyHeight() int {
	return max(m.height-lipgloss.Height(m.footer()), 3)
}

// layout pushes pane sizes down to the children. Pane sizes passed on are
// inner sizes; borders take one cell on each side.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.help.Width = m.width
	h := m.bodyHeight()

	sw := m.sidebarWidth()
	m.sidebar.SetSize(max(sw-2, 1), h-2)
	if m.cfg.UI.ShowPreview {
		m.preview.SetSize(max(m.width-sw-2, 1), h-2)
	}
	ow := m.outlineWidth()
	m.editor.SetSize(max(m.width-ow-2, 1), h-2)
	if ow > 0 {
		m.outline.SetSize(ow-2, h-2)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var body string
	if m.mode == ModeEdit {
		body = m.editView()
	} else {
		body = m.browseView()
	}
	view := zone.Scan(lipgloss.JoinVertical(lipgloss.Left, body, m.footer()))

	if m.modal != nil {
		view = m.modal.Overlay(view)
	}
	view = m.toaster.Overlay(view, m.width, m.height)
	if m.debug && m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}
	return view
}

func (m Model) browseView() string {
	h := m.bodyHeight()
	sw := m.sidebarWidth()

	shown, total := m.sidebar.Count()
	count := fmt.Sprintf("%d", total)
	if m.sidebar.Filtered() {
		count = fmt.Sprintf("%d/%d", shown, total)
	}
	list := panes.BorderedPane(panes.BorderConfig{
		Content:  m.sidebar.View(),
		Width:    sw,
		Height:   h,
		TopLeft:  "Notes",
		TopRight: count,
		Focused:  true,
	})
	if !m.cfg.UI.ShowPreview {
		return list
	}

	title := "Preview"
	if p := m.preview.Path(); p != "" {
		title = p
	}
	preview := panes.BorderedPane(panes.BorderConfig{
		Content:  m.preview.View(),
		Width:    m.width - sw,
		Height:   h,
		TopLeft:  title,
		TopRight: m.preview.ScrollIndicator(),
	})
	return lipgloss.JoinHorizontal(lipgloss.Top, list, preview)
}

func (m Model) editView() string {
	title := m.editor.Path()
	if m.editor.Engine().Dirty() {
		title += " [+]"
	}
	var bottom string
	if m.externalChange {
		bottom = "changed on disk"
	}
	ow := m.outlineWidth()
	pane := panes.BorderedPane(panes.BorderConfig{
		Content:     m.editor.View(),
		Width:       m.width - ow,
		Height:      m.bodyHeight(),
		TopLeft:     title,
		TopRight:    m.editor.Position(),
		BottomLeft:  bottom,
		Focused:     m.editor.Focused(),
		BorderColor: m.editor.BorderColor(),
	})
	if ow == 0 {
		return pane
	}
	side := panes.BorderedPane(panes.BorderConfig{
		Content:  m.outline.View(),
		Width:    ow,
		Height:   m.bodyHeight(),
		TopLeft:  "Outline",
		TopRight: fmt.Sprintf("%d", len(m.outline.Headings())),
		Focused:  m.outlineFocused(),
	})
	return lipgloss.JoinHorizontal(lipgloss.Top, pane, side)
}

// footer is the status line followed by key help.
func (m Model) footer() string {
	var status string
	if m.mode == ModeEdit {
		status = m.editor.ModeIndicator() + styles.StatusBarStyle.Render(m.editor.Path())
	} else {
		n := len(m.sidebar.Notes())
		noun := "notes"
		if n == 1 {
			noun = "note"
		}
		status = styles.StatusBarStyle.Render(fmt.Sprintf("%d %s · %s", n, noun, m.notes.Root()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, " "+m.help.View(m.keyMap()))
}

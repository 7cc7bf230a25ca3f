package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/folio/internal/editor"
	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/notes"
	"github.com/zjrosen/folio/internal/ui/modal"
	"github.com/zjrosen/folio/internal/ui/outline"
	"github.com/zjrosen/folio/internal/ui/toaster"
)

func (m Model) handleEditLoaded(msg editLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.ErrorErr(log.CatNotes, "opening note", msg.err)
		return m.showToast("Could not open note: "+msg.err.Error(), toaster.StyleError)
	}

	m.doc = msg.doc
	m.pendingSave = 0
	m.externalChange = false
	m.editor = m.editor.Load(msg.doc.Path, msg.doc.Content, msg.cursor)
	m.editor.Focus()
	m.outlineOpen = false
	m.mode = ModeEdit
	m.layout()
	log.Info(log.CatApp, "editing", "path", msg.doc.Path)
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.editKeys.Save) {
		return m.save()
	}

	var cmd tea.Cmd
	if m.outlineFocused() {
		m.outline, cmd = m.outline.Update(msg)
		return m, cmd
	}
	// Only from Normal mode, so a jump never lands mid-insert or mid-operator.
	if key.Matches(msg, m.editKeys.Outline) && m.editor.Engine().Mode() == editor.ModeNormal {
		return m.openOutline()
	}

	m.editor, cmd = m.editor.Update(msg)
	m.syncOutline()
	return m, cmd
}

func (m Model) outlineFocused() bool {
	return m.mode == ModeEdit && m.outlineOpen && !m.editor.Focused()
}

// openOutline shows the heading list and gives it focus, selecting the
// section the cursor is in.
func (m Model) openOutline() (tea.Model, tea.Cmd) {
	m.outlineOpen = true
	m.editor.Blur()
	m.syncOutline()
	m.layout()
	return m, nil
}

func (m Model) closeOutline() (tea.Model, tea.Cmd) {
	m.outlineOpen = false
	m.editor.Focus()
	m.layout()
	return m, nil
}

// jumpToHeading moves the cursor to row and hands focus back to the editor.
// The outline stays open.
func (m Model) jumpToHeading(row int) (tea.Model, tea.Cmd) {
	if m.mode != ModeEdit {
		return m, nil
	}
	m.editor.JumpTo(row)
	m.editor.Focus()
	m.syncOutline()
	log.Debug(log.CatEditor, "jumped to heading", "row", row)
	return m, nil
}

// syncOutline reparses the headings and follows the cursor.
func (m *Model) syncOutline() {
	if !m.outlineOpen {
		return
	}
	eng := m.editor.Engine()
	m.outline = m.outline.SetHeadings(outline.Parse(eng.Lines())).SelectRow(eng.Cursor().Row)
}

// save settles the engine so an open insert session is kept, then writes
// the document.
func (m Model) save() (tea.Model, tea.Cmd) {
	eng := m.editor.Engine()
	eng.Settle()
	content := eng.Value()
	m.pendingSave = notes.Sum(content)
	return m, m.saveCmd(m.editor.Path(), content)
}

func (m Model) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.pendingSave = 0
		log.ErrorErr(log.CatNotes, "saving note", msg.err, "path", msg.path)
		return m.showToast("Save failed: "+msg.err.Error(), toaster.StyleError)
	}
	if m.mode != ModeEdit || msg.path != m.editor.Path() {
		return m, nil
	}

	m.doc = notes.Document{Path: msg.path, Content: msg.content, Fingerprint: msg.fingerprint}
	m.pendingSave = 0
	m.externalChange = false
	eng := m.editor.Engine()
	if eng.Value() == msg.content {
		eng.MarkSaved()
	}
	log.Info(log.CatNotes, "note saved", "path", msg.path, "fingerprint", msg.fingerprint)
	return m.showToast("Saved "+msg.path, toaster.StyleSuccess)
}

// handleDiskState warns once when the open note was changed by something
// other than our own save.
func (m Model) handleDiskState(msg diskStateMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeEdit || msg.path != m.editor.Path() || m.externalChange {
		return m, nil
	}
	if !msg.missing && (msg.fingerprint == m.doc.Fingerprint || msg.fingerprint == m.pendingSave) {
		return m, nil
	}

	m.externalChange = true
	text := msg.path + " changed on disk"
	if msg.missing {
		text = msg.path + " was deleted on disk"
	}
	log.Warn(log.CatWatch, "open note changed externally", "path", msg.path, "missing", msg.missing)
	return m.showToast(text, toaster.StyleWarn)
}

// requestLeaveEdit leaves edit mode, asking first when there are unsaved
// changes.
func (m Model) requestLeaveEdit() (tea.Model, tea.Cmd) {
	eng := m.editor.Engine()
	if !eng.Dirty() {
		return m.leaveEdit()
	}
	summary := notes.Summarize(m.doc.Content, eng.Value())
	return m, m.openModal(modal.Config{
		Tag:          tagDiscard,
		Title:        "Unsaved changes",
		Message:      fmt.Sprintf("Discard your changes to %s?", m.editor.Path()),
		Details:      []string{summary.String()},
		ConfirmLabel: "Discard",
		Variant:      modal.ButtonDanger,
	})
}

func (m Model) leaveEdit() (tea.Model, tea.Cmd) {
	path := m.editor.Path()
	remember := m.rememberCursorCmd(path, m.editor.Engine().Cursor())

	m.mode = ModeBrowse
	m.externalChange = false
	m.outlineOpen = false
	m.sidebar = m.sidebar.SelectPath(path)
	m.layout()
	return m, tea.Batch(remember, m.loadNotesCmd(), m.loadPreviewCmd(path))
}

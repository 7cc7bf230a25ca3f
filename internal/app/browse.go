package app

import (
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/notes"
	"github.com/zjrosen/folio/internal/ui/modal"
	"github.com/zjrosen/folio/internal/ui/toaster"
	"github.com/zjrosen/folio/internal/watcher"
)

// Modal tags.
const (
	tagNewNote = "new-note"
	tagRename  = "rename-note"
	tagDelete  = "delete-note"
	tagDiscard = "discard-changes"
)

func (m Model) isToggleLog(msg tea.KeyMsg) bool {
	return key.Matches(msg, m.browseKeys.ToggleLog)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sidebar.Filtering() {
		return m.updateSidebar(msg)
	}

	switch {
	case key.Matches(msg, m.browseKeys.Quit):
		return m, tea.Sequence(m.rememberLastNoteCmd(), tea.Quit)

	case key.Matches(msg, m.browseKeys.Open):
		if note, ok := m.sidebar.Selected(); ok {
			return m, m.openEditCmd(note.Path)
		}
		return m, nil

	case key.Matches(msg, m.browseKeys.New):
		return m, m.openModal(modal.Config{
			Tag:     tagNewNote,
			Title:   "New note",
			Message: "Leave the name empty for an untitled note.",
			Input: &modal.InputConfig{
				Label:       "Name",
				Placeholder: "ideas or work/standup",
				AllowEmpty:  true,
			},
			ConfirmLabel: "Create",
		})

	case key.Matches(msg, m.browseKeys.Rename):
		note, ok := m.sidebar.Selected()
		if !ok {
			return m, nil
		}
		return m, m.openModal(modal.Config{
			Tag:     tagRename,
			Title:   "Rename note",
			Message: fmt.Sprintf("New name for %s. Without a slash it stays in the same folder.", note.Path),
			Input: &modal.InputConfig{
				Label: "Name",
				Value: strings.TrimSuffix(note.Path, path.Ext(note.Path)),
			},
			ConfirmLabel: "Rename",
		})

	case key.Matches(msg, m.browseKeys.Filter):
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.StartFilter()
		return m, cmd

	case msg.Type == tea.KeyEsc && m.sidebar.Filtered():
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.ClearFilter()
		return m, cmd

	case key.Matches(msg, m.browseKeys.Delete):
		note, ok := m.sidebar.Selected()
		if !ok {
			return m, nil
		}
		return m, m.openModal(modal.Config{
			Tag:          tagDelete,
			Title:        "Delete note",
			Message:      fmt.Sprintf("Delete %s? This cannot be undone.", note.Path),
			ConfirmLabel: "Delete",
			Variant:      modal.ButtonDanger,
		})

	case key.Matches(msg, m.browseKeys.Reload):
		return m, m.loadNotesCmd()

	case key.Matches(msg, m.browseKeys.PreviewDown):
		m.preview.HalfPageDown()
		return m, nil

	case key.Matches(msg, m.browseKeys.PreviewUp):
		m.preview.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.browseKeys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	return m.updateSidebar(msg)
}

// updateSidebar passes a key to the note list. A filter that leaves nothing
// selected also clears the preview.
func (m Model) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(msg)
	if _, ok := m.sidebar.Selected(); !ok {
		m.preview = m.preview.Clear()
	}
	return m, cmd
}

func (m Model) handleBrowseMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if msg.X < m.sidebarWidth() {
		m.sidebar, cmd = m.sidebar.Update(msg)
	} else {
		m.preview, cmd = m.preview.Update(msg)
	}
	return m, cmd
}

func (m Model) handleModalSubmit(msg modal.SubmitMsg) (tea.Model, tea.Cmd) {
	switch msg.Tag {
	case tagNewNote:
		return m, m.createCmd(msg.Value)
	case tagRename:
		if note, ok := m.sidebar.Selected(); ok {
			return m, m.renameCmd(note.Path, msg.Value)
		}
	case tagDelete:
		if note, ok := m.sidebar.Selected(); ok {
			return m, m.deleteCmd(note.Path)
		}
	case tagDiscard:
		log.Info(log.CatApp, "discarding changes", "path", m.editor.Path())
		return m.leaveEdit()
	}
	return m, nil
}

func (m Model) handleNotesLoaded(msg notesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.ErrorErr(log.CatNotes, "listing notes", msg.err)
		text := "Could not list notes: " + msg.err.Error()
		if errors.Is(msg.err, notes.ErrNotFound) {
			text = "Notes directory not found: " + m.notes.Root()
		}
		return m.showToast(text, toaster.StyleError)
	}

	before, hadSelection := m.sidebar.Selected()
	m.sidebar = m.sidebar.SetNotes(msg.notes)
	if !m.loaded {
		m.loaded = true
		start := m.cfg.LastNote
		if start == "" && len(msg.recent) > 0 {
			start = msg.recent[0]
		}
		if start != "" {
			m.sidebar = m.sidebar.SelectPath(start)
		}
	}
	log.Debug(log.CatNotes, "notes listed", "count", len(msg.notes))

	after, ok := m.sidebar.Selected()
	switch {
	case !ok:
		m.preview = m.preview.Clear()
		return m, nil
	case !hadSelection || before.Path != after.Path || m.preview.Path() != after.Path:
		return m, m.loadPreviewCmd(after.Path)
	}
	return m, nil
}

func (m Model) handlePreviewLoaded(msg previewLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.ErrorErr(log.CatNotes, "loading preview", msg.err)
		m.preview = m.preview.Clear()
		return m, nil
	}
	if sel, ok := m.sidebar.Selected(); !ok || sel.Path != msg.doc.Path {
		return m, nil // selection moved on
	}
	m.preview = m.preview.SetDocument(msg.doc)
	return m, nil
}

func (m Model) handleCreated(msg createdMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.ErrorErr(log.CatNotes, "creating note", msg.err)
		text := "Could not create note: " + msg.err.Error()
		switch {
		case errors.Is(msg.err, notes.ErrExists):
			text = "A note with that name already exists"
		case errors.Is(msg.err, notes.ErrInvalidName):
			text = "Invalid note name"
		}
		return m.showToast(text, toaster.StyleError)
	}
	log.Info(log.CatNotes, "note created", "path", msg.path)

	m.sidebar = m.sidebar.SetNotes(appendNote(m.sidebar.Notes(), notes.Note{Path: msg.path, Title: msg.path})).SelectPath(msg.path)
	model, toast := m.showToast("Created "+msg.path, toaster.StyleSuccess)
	return model, tea.Batch(toast, m.loadNotesCmd(), m.openEditCmd(msg.path))
}

func (m Model) handleRenamed(msg renamedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.ErrorErr(log.CatNotes, "renaming note", msg.err, "path", msg.from)
		text := "Could not rename " + msg.from + ": " + msg.err.Error()
		switch {
		case errors.Is(msg.err, notes.ErrExists):
			text = "A note with that name already exists"
		case errors.Is(msg.err, notes.ErrInvalidName):
			text = "Invalid note name"
		}
		return m.showToast(text, toaster.StyleError)
	}
	if msg.to == msg.from {
		return m, nil
	}
	log.Info(log.CatNotes, "note renamed", "from", msg.from, "to", msg.to)

	list := slices.DeleteFunc(slices.Clone(m.sidebar.Notes()), func(n notes.Note) bool { return n.Path == msg.from })
	renamed := notes.Note{Path: msg.to, Title: msg.to}
	for _, n := range m.sidebar.Notes() {
		if n.Path == msg.from {
			renamed = n
			renamed.Path = msg.to
		}
	}
	m.sidebar = m.sidebar.SetNotes(appendNote(list, renamed)).SelectPath(msg.to)

	model, toast := m.showToast(fmt.Sprintf("Renamed %s → %s", msg.from, msg.to), toaster.StyleSuccess)
	return model, tea.Batch(toast, m.loadNotesCmd(), m.loadPreviewCmd(msg.to))
}

func (m Model) handleDeleted(msg deletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.ErrorErr(log.CatNotes, "deleting note", msg.err, "path", msg.path)
		return m.showToast("Could not delete "+msg.path+": "+msg.err.Error(), toaster.StyleError)
	}
	log.Info(log.CatNotes, "note deleted", "path", msg.path)
	model, toast := m.showToast("Deleted "+msg.path, toaster.StyleSuccess)
	return model, tea.Batch(toast, m.loadNotesCmd())
}

func (m Model) handleWatchEvent(ev watcher.Event) (tea.Model, tea.Cmd) {
	changed := m.relPaths(ev.Paths)
	log.Debug(log.CatWatch, "notes changed on disk", "paths", changed)

	cmds := []tea.Cmd{m.loadNotesCmd()}
	if m.watchListener != nil {
		cmds = append(cmds, m.watchListener.Listen())
	}
	if m.mode == ModeEdit && slices.Contains(changed, m.editor.Path()) {
		cmds = append(cmds, m.diskStateCmd(m.editor.Path()))
	}
	if m.mode == ModeBrowse && m.preview.Path() != "" && slices.Contains(changed, m.preview.Path()) {
		cmds = append(cmds, m.loadPreviewCmd(m.preview.Path()))
	}
	return m, tea.Batch(cmds...)
}

// appendNote adds n unless its path is already listed, keeping path order.
func appendNote(list []notes.Note, n notes.Note) []notes.Note {
	out := slices.Clone(list)
	i, found := slices.BinarySearchFunc(out, n.Path, func(e notes.Note, p string) int {
		switch {
		case e.Path < p:
			return -1
		case e.Path > p:
			return 1
		}
		return 0
	})
	if found {
		return out
	}
	return slices.Insert(out, i, n)
}

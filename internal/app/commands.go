package app

import (
	"errors"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/folio/internal/config"
	"github.com/zjrosen/folio/internal/editor"
	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/notes"
)

// recentLimit bounds the recents lookup used to pick a starting note.
const recentLimit = 1

type notesLoadedMsg struct {
	notes  []notes.Note
	recent []string
	err    error
}

type previewLoadedMsg struct {
	doc notes.Document
	err error
}

type editLoadedMsg struct {
	doc    notes.Document
	cursor editor.Position
	err    error
}

type savedMsg struct {
	path        string
	content     string
	fingerprint notes.Fingerprint
	err         error
}

type createdMsg struct {
	path string
	err  error
}

type renamedMsg struct {
	from string
	to   string
	err  error
}

type deletedMsg struct {
	path string
	err  error
}

// diskStateMsg reports the on-disk fingerprint of the note being edited.
type diskStateMsg struct {
	path        string
	fingerprint notes.Fingerprint
	missing     bool
}

func (m Model) loadNotesCmd() tea.Cmd {
	ns, st := m.notes, m.state
	first := !m.loaded
	return func() tea.Msg {
		list, err := ns.List()
		if err != nil {
			return notesLoadedMsg{err: err}
		}
		msg := notesLoadedMsg{notes: list}
		if first && st != nil {
			recent, err := st.Recent(recentLimit)
			if err != nil {
				log.ErrorErr(log.CatStore, "reading recent notes", err)
			}
			msg.recent = recent
		}
		return msg
	}
}

func (m Model) loadPreviewCmd(path string) tea.Cmd {
	if path == "" || !m.cfg.UI.ShowPreview {
		return nil
	}
	ns := m.notes
	return func() tea.Msg {
		doc, err := ns.Load(path)
		return previewLoadedMsg{doc: doc, err: err}
	}
}

func (m Model) openEditCmd(path string) tea.Cmd {
	ns, st := m.notes, m.state
	return func() tea.Msg {
		doc, err := ns.Load(path)
		if err != nil {
			return editLoadedMsg{err: err}
		}
		msg := editLoadedMsg{doc: doc}
		if st != nil {
			row, col, ok, err := st.Cursor(path)
			if err != nil {
				log.ErrorErr(log.CatStore, "reading cursor", err, "path", path)
			} else if ok {
				msg.cursor = editor.Position{Row: row, Col: col}
			}
		}
		return msg
	}
}

func (m Model) saveCmd(path, content string) tea.Cmd {
	ns := m.notes
	return func() tea.Msg {
		fp, err := ns.Save(path, content)
		return savedMsg{path: path, content: content, fingerprint: fp, err: err}
	}
}

func (m Model) createCmd(name string) tea.Cmd {
	ns := m.notes
	return func() tea.Msg {
		path, err := ns.Create(name)
		return createdMsg{path: path, err: err}
	}
}

// renameCmd renames a note and carries its remembered cursor along.
func (m Model) renameCmd(from, name string) tea.Cmd {
	ns, st := m.notes, m.state
	return func() tea.Msg {
		to, err := ns.Rename(from, name)
		if err != nil {
			return renamedMsg{from: from, err: err}
		}
		if st != nil && to != from {
			if err := st.Move(from, to); err != nil {
				log.ErrorErr(log.CatStore, "moving note state", err, "from", from, "to", to)
			}
		}
		return renamedMsg{from: from, to: to}
	}
}

func (m Model) deleteCmd(path string) tea.Cmd {
	ns, st := m.notes, m.state
	return func() tea.Msg {
		if err := ns.Delete(path); err != nil {
			return deletedMsg{path: path, err: err}
		}
		if st != nil {
			if err := st.Forget(path); err != nil {
				log.ErrorErr(log.CatStore, "forgetting note state", err, "path", path)
			}
		}
		return deletedMsg{path: path}
	}
}

func (m Model) diskStateCmd(path string) tea.Cmd {
	ns := m.notes
	return func() tea.Msg {
		doc, err := ns.Load(path)
		if errors.Is(err, notes.ErrNotFound) {
			return diskStateMsg{path: path, missing: true}
		}
		if err != nil {
			log.ErrorErr(log.CatNotes, "checking note on disk", err, "path", path)
			return nil
		}
		return diskStateMsg{path: path, fingerprint: doc.Fingerprint}
	}
}

// rememberCursorCmd records where the cursor was when a note was closed.
func (m Model) rememberCursorCmd(path string, pos editor.Position) tea.Cmd {
	st := m.state
	if st == nil || path == "" {
		return nil
	}
	at := m.now()
	return func() tea.Msg {
		if err := st.SaveCursor(path, pos.Row, pos.Col, at); err != nil {
			log.ErrorErr(log.CatStore, "saving cursor", err, "path", path)
		}
		return nil
	}
}

// rememberLastNoteCmd writes last_note into the config file.
func (m Model) rememberLastNoteCmd() tea.Cmd {
	note, ok := m.sidebar.Selected()
	if !ok || m.configPath == "" || note.Path == m.cfg.LastNote {
		return nil
	}
	path := m.configPath
	return func() tea.Msg {
		if err := config.SetLastNote(path, note.Path); err != nil {
			log.ErrorErr(log.CatConfig, "saving last note", err, "config", path)
		}
		return nil
	}
}

// relPaths maps absolute watcher paths to note paths, dropping any outside
// the notes directory.
func (m Model) relPaths(abs []string) []string {
	var out []string
	for _, p := range abs {
		if rel, ok := m.notes.Rel(filepath.Clean(p)); ok {
			out = append(out, rel)
		}
	}
	return out
}

// Package app contains the root application model.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/folio/internal/cachemanager"
	"github.com/zjrosen/folio/internal/config"
	"github.com/zjrosen/folio/internal/editor"
	"github.com/zjrosen/folio/internal/keys"
	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/notes"
	"github.com/zjrosen/folio/internal/pubsub"
	"github.com/zjrosen/folio/internal/store"
	"github.com/zjrosen/folio/internal/tracing"
	"github.com/zjrosen/folio/internal/ui/modal"
	"github.com/zjrosen/folio/internal/ui/noteeditor"
	"github.com/zjrosen/folio/internal/ui/outline"
	"github.com/zjrosen/folio/internal/ui/preview"
	"github.com/zjrosen/folio/internal/ui/shared/logoverlay"
	"github.com/zjrosen/folio/internal/ui/sidebar"
	"github.com/zjrosen/folio/internal/ui/toaster"
	"github.com/zjrosen/folio/internal/watcher"
)

// Mode is the top-level screen.
type Mode int

const (
	// ModeBrowse shows the note list and a preview.
	ModeBrowse Mode = iota
	// ModeEdit gives the whole screen to the editor.
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "browse"
}

// Options wires the application to its services. Notes is required; the
// rest may be left zero.
type Options struct {
	Config     config.Config
	ConfigPath string // where last_note is recorded; empty disables it

	Notes   *notes.Store
	State   *store.Store     // cursor memory and recents
	Watcher *watcher.Watcher // started watcher; the app stops it on Close

	Clipboard     noteeditor.Clipboard
	PreviewCache  cachemanager.CacheManager[string, string]
	MarkdownStyle string // resolved "dark" or "light"

	// Debug enables the log overlay.
	Debug bool

	// Tracer, when set, gets a span per editor command.
	Tracer trace.Tracer

	Now func() time.Time
}

// Model is the root application state.
type Model struct {
	cfg        config.Config
	configPath string
	notes      *notes.Store
	state      *store.Store
	watcher    *watcher.Watcher
	now        func() time.Time

	mode    Mode
	sidebar sidebar.Model
	preview preview.Model
	editor  noteeditor.Model

	// outline sits beside the editor while outlineOpen. It has focus
	// whenever it is open and the editor does not.
	outline     outline.Model
	outlineKeys keys.OutlineKeyMap
	outlineOpen bool

	// doc is the note open in the editor as last read from or written to
	// disk. pendingSave is the fingerprint of a save still in flight.
	doc            notes.Document
	pendingSave    notes.Fingerprint
	externalChange bool

	modal      *modal.Model
	toaster    toaster.Model
	logOverlay logoverlay.Model
	help       help.Model
	browseKeys keys.BrowseKeyMap
	editKeys   keys.EditKeyMap

	debug         bool
	loaded        bool
	ctx           context.Context
	cancel        context.CancelFunc
	logListener   *log.LogListener
	watchListener *pubsub.ContinuousListener[watcher.Event]

	width  int
	height int
}

// New creates the root model.
func New(opts Options) Model {
	ctx, cancel := context.WithCancel(context.Background())

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	cache := opts.PreviewCache
	if cache == nil {
		cache = cachemanager.NewInMemoryCacheManager[string, string]("preview", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	}

	edOpts := []noteeditor.Option{
		noteeditor.WithLineNumbers(opts.Config.Editor.LineNumbers),
		noteeditor.WithTabWidth(opts.Config.Editor.TabWidth),
	}
	if opts.Clipboard != nil && opts.Config.Editor.SystemClipboard {
		edOpts = append(edOpts, noteeditor.WithClipboard(opts.Clipboard))
	}

	eng := editor.New(opts.Config.EngineConfig())
	if opts.Tracer != nil {
		eng.Use(tracing.EditorMiddleware(opts.Tracer))
	}

	m := Model{
		cfg:        opts.Config,
		configPath: opts.ConfigPath,
		notes:      opts.Notes,
		state:      opts.State,
		watcher:    opts.Watcher,
		now:        now,
		sidebar:    sidebar.New(),
		preview:    preview.New(opts.MarkdownStyle, cache),
		editor:     noteeditor.New(eng, edOpts...),
		logOverlay: logoverlay.New(),
		help:       help.New(),
		browseKeys: keys.DefaultBrowseKeyMap(),
		editKeys:   keys.DefaultEditKeyMap(),
		debug:      opts.Debug,
		ctx:        ctx,
		cancel:     cancel,

		outline:     outline.New(),
		outlineKeys: keys.DefaultOutlineKeyMap(),
	}
	if opts.Watcher != nil {
		m.watchListener = pubsub.NewContinuousListener(ctx, opts.Watcher.Events())
	}
	if opts.Debug {
		m.logListener = log.NewListener(ctx)
	}
	return m
}

// Init loads the note list and starts the listeners.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadNotesCmd()}
	if m.watchListener != nil {
		cmds = append(cmds, m.watchListener.Listen())
	}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Mode returns the active screen.
func (m Model) Mode() Mode {
	return m.mode
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logOverlay.SetSize(msg.Width, msg.Height)
		if m.modal != nil {
			m.modal.SetSize(msg.Width, msg.Height)
		}
		m.layout()
		return m, nil

	case pubsub.Event[string]:
		m.logOverlay = m.logOverlay.Append(msg.Payload)
		return m, m.logListener.Listen()

	case pubsub.Event[watcher.Event]:
		return m.handleWatchEvent(msg.Payload)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case logoverlay.CloseMsg:
		m.logOverlay.Hide()
		return m, nil

	case modal.SubmitMsg:
		m.modal = nil
		return m.handleModalSubmit(msg)

	case modal.CancelMsg:
		m.modal = nil
		log.Debug(log.CatUI, "modal cancelled", "tag", msg.Tag)
		return m, nil

	case notesLoadedMsg:
		return m.handleNotesLoaded(msg)

	case previewLoadedMsg:
		return m.handlePreviewLoaded(msg)

	case editLoadedMsg:
		return m.handleEditLoaded(msg)

	case savedMsg:
		return m.handleSaved(msg)

	case createdMsg:
		return m.handleCreated(msg)

	case renamedMsg:
		return m.handleRenamed(msg)

	case deletedMsg:
		return m.handleDeleted(msg)

	case diskStateMsg:
		return m.handleDiskState(msg)

	case noteeditor.UnhandledKeyMsg:
		if m.mode == ModeEdit && msg.Key.Name == "<esc>" {
			return m.requestLeaveEdit()
		}
		return m, nil

	case noteeditor.ModeChangeMsg:
		log.Debug(log.CatEditor, "mode change", "from", msg.From, "to", msg.To)
		return m, nil

	case noteeditor.ChangeMsg:
		return m, nil

	case outline.JumpMsg:
		return m.jumpToHeading(msg.Row)

	case outline.CloseMsg:
		return m.closeOutline()

	case noteeditor.ClipboardErrMsg:
		return m.showToast("Clipboard unavailable: "+msg.Err.Error(), toaster.StyleWarn)

	case sidebar.SelectMsg:
		return m, m.loadPreviewCmd(msg.Path)

	case tea.KeyMsg:
		if m.debug && (m.logOverlay.Visible() || m.modal == nil) && m.isToggleLog(msg) {
			m.logOverlay.Toggle()
			return m, nil
		}
		if m.logOverlay.Visible() {
			var cmd tea.Cmd
			m.logOverlay, cmd = m.logOverlay.Update(msg)
			return m, cmd
		}
		if m.modal != nil {
			next, cmd := m.modal.Update(msg)
			m.modal = &next
			return m, cmd
		}
		if m.mode == ModeEdit {
			return m.handleEditKey(msg)
		}
		return m.handleBrowseKey(msg)

	case tea.MouseMsg:
		if m.logOverlay.Visible() || m.modal != nil || m.mode != ModeBrowse {
			return m, nil
		}
		return m.handleBrowseMouse(msg)
	}

	if m.modal != nil {
		next, cmd := m.modal.Update(msg)
		m.modal = &next
		return m, cmd
	}
	return m, nil
}

func (m Model) showToast(text string, style toaster.Style) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show(text, style, toaster.DefaultDuration)
	return m, cmd
}

func (m *Model) openModal(cfg modal.Config) tea.Cmd {
	md := modal.New(cfg)
	md.SetSize(m.width, m.height)
	m.modal = &md
	return md.Init()
}

// Close stops the listeners and the watcher.
func (m *Model) Close() error {
	m.cancel()
	if m.watcher != nil {
		return m.watcher.Stop()
	}
	return nil
}

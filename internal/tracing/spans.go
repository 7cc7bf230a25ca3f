package tracing

// Span names.
const (
	SpanEditorCommand = "editor.command"
	SpanPrefixNotes   = "notes."
)

// Attribute keys.
const (
	AttrCommandID       = "command.id"
	AttrCommandMode     = "command.mode"
	AttrCommandResult   = "command.result"
	AttrContentChanged  = "command.content_changed"
	AttrModeChanged     = "command.mode_changed"
	AttrRegisterChanged = "command.register_changed"
)

// Note I/O attribute keys.
const (
	AttrNotePath   = "note.path"
	AttrNoteTarget = "note.target"
	AttrNoteBytes  = "note.bytes"
	AttrNoteCount  = "note.count"
)

// Package notes reads and writes the markdown files in the notes directory.
package notes

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/tracing"
)

// Errors returned by Store operations.
var (
	ErrNotFound    = errors.New("note not found")
	ErrExists      = errors.New("note already exists")
	ErrInvalidName = errors.New("invalid note name")
)

const noteExt = ".md"

// Note describes a markdown file without its content.
type Note struct {
	Path    string // relative to the notes directory, slash separated
	Title   string
	ModTime time.Time
	Size    int64
}

// Document is a loaded note.
type Document struct {
	Path        string
	Content     string
	Fingerprint Fingerprint
	ModTime     time.Time
}

// Store is rooted at a notes directory.
type Store struct {
	root   string
	tracer trace.Tracer
}

// NewStore returns a store for dir. The directory is created on first
// write if missing.
func NewStore(dir string) *Store {
	return &Store{root: dir, tracer: noop.NewTracerProvider().Tracer("")}
}

// SetTracer records a span for every file operation. A nil tracer turns
// spans off.
func (s *Store) SetTracer(t trace.Tracer) {
	if t == nil {
		t = noop.NewTracerProvider().Tracer("")
	}
	s.tracer = t
}

func (s *Store) span(op, rel string) trace.Span {
	_, span := s.tracer.Start(context.Background(), tracing.SpanPrefixNotes+op,
		trace.WithAttributes(attribute.String(tracing.AttrNotePath, rel)))
	return span
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// Root is the absolute notes directory.
func (s *Store) Root() string {
	return s.root
}

// Abs joins rel onto the notes directory.
func (s *Store) Abs(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

// Rel converts an absolute path inside the notes directory to a note path.
func (s *Store) Rel(abs string) (string, bool) {
	rel, err := filepath.Rel(s.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// List walks the notes directory and returns every visible .md file,
// sorted by path.
func (s *Store) List() (notes []Note, err error) {
	span := s.span("list", "")
	defer func() {
		span.SetAttributes(attribute.Int(tracing.AttrNoteCount, len(notes)))
		endSpan(span, err)
	}()

	err = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != s.root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), noteExt) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, _ := s.Rel(path)
		notes = append(notes, Note{
			Path:    rel,
			Title:   readTitle(path, name),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("listing notes in %s: %w", s.root, ErrNotFound)
		}
		return nil, fmt.Errorf("listing notes in %s: %w", s.root, err)
	}

	sort.Slice(notes, func(i, j int) bool { return notes[i].Path < notes[j].Path })
	return notes, nil
}

// Load reads a note.
func (s *Store) Load(rel string) (doc Document, err error) {
	span := s.span("load", rel)
	defer func() {
		span.SetAttributes(attribute.Int(tracing.AttrNoteBytes, len(doc.Content)))
		endSpan(span, err)
	}()

	if err := validatePath(rel); err != nil {
		return Document{}, err
	}
	path := s.Abs(rel)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, fmt.Errorf("loading %s: %w", rel, ErrNotFound)
		}
		return Document{}, fmt.Errorf("loading %s: %w", rel, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return Document{}, fmt.Errorf("loading %s: %w", rel, err)
	}

	content := string(data)
	return Document{
		Path:        rel,
		Content:     content,
		Fingerprint: Sum(content),
		ModTime:     info.ModTime(),
	}, nil
}

// Save writes content atomically and returns its fingerprint.
func (s *Store) Save(rel, content string) (fp Fingerprint, err error) {
	span := s.span("save", rel)
	span.SetAttributes(attribute.Int(tracing.AttrNoteBytes, len(content)))
	defer func() { endSpan(span, err) }()

	if err := validatePath(rel); err != nil {
		return 0, err
	}
	path := s.Abs(rel)
	if err := writeAtomic(path, []byte(content)); err != nil {
		log.ErrorErr(log.CatNotes, "Failed to save note", err, "path", rel)
		return 0, fmt.Errorf("saving %s: %w", rel, err)
	}
	log.Info(log.CatNotes, "Saved note", "path", rel, "bytes", len(content))
	return Sum(content), nil
}

// Create makes a new note seeded with a heading and returns its path. An
// empty name becomes untitled-<id>.md.
func (s *Store) Create(name string) (rel string, err error) {
	span := s.span("create", name)
	defer func() { endSpan(span, err) }()

	rel = strings.TrimSpace(name)
	if rel == "" {
		rel = "untitled-" + uuid.NewString()[:8]
	}
	if !strings.EqualFold(filepath.Ext(rel), noteExt) {
		rel += noteExt
	}
	rel = filepath.ToSlash(rel)
	if err := validatePath(rel); err != nil {
		return "", err
	}

	path := s.Abs(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("creating %s: %w", rel, err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("creating %s: %w", rel, ErrExists)
		}
		return "", fmt.Errorf("creating %s: %w", rel, err)
	}
	stem := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	if _, err := fmt.Fprintf(f, "# %s\n", stem); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("creating %s: %w", rel, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("creating %s: %w", rel, err)
	}

	log.Info(log.CatNotes, "Created note", "path", rel)
	return rel, nil
}

// Delete removes a note.
func (s *Store) Delete(rel string) (err error) {
	span := s.span("delete", rel)
	defer func() { endSpan(span, err) }()

	if err := validatePath(rel); err != nil {
		return err
	}
	if err := os.Remove(s.Abs(rel)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("deleting %s: %w", rel, ErrNotFound)
		}
		return fmt.Errorf("deleting %s: %w", rel, err)
	}
	log.Info(log.CatNotes, "Deleted note", "path", rel)
	return nil
}

// Rename moves a note and returns its new path. A name without a slash
// keeps the note in its directory, and ".md" is added when missing.
// Renaming a note to its own path does nothing.
func (s *Store) Rename(from, name string) (to string, err error) {
	span := s.span("rename", from)
	defer func() {
		span.SetAttributes(attribute.String(tracing.AttrNoteTarget, to))
		endSpan(span, err)
	}()

	if err := validatePath(from); err != nil {
		return "", err
	}
	to = filepath.ToSlash(strings.TrimSpace(name))
	if to == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if !strings.Contains(to, "/") {
		if dir := path.Dir(from); dir != "." {
			to = dir + "/" + to
		}
	}
	if !strings.EqualFold(path.Ext(to), noteExt) {
		to += noteExt
	}
	if err := validatePath(to); err != nil {
		return "", err
	}
	if to == from {
		return from, nil
	}

	src, dst := s.Abs(from), s.Abs(to)
	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("renaming %s: %w", from, ErrNotFound)
		}
		return "", fmt.Errorf("renaming %s: %w", from, err)
	}
	if _, err := os.Lstat(dst); err == nil {
		return "", fmt.Errorf("renaming %s to %s: %w", from, to, ErrExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("renaming %s to %s: %w", from, to, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return "", fmt.Errorf("renaming %s to %s: %w", from, to, err)
	}
	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("renaming %s to %s: %w", from, to, err)
	}

	log.Info(log.CatNotes, "Renamed note", "from", from, "to", to)
	return to, nil
}

// Changed reports whether the note on disk no longer matches fp. A deleted
// note counts as changed.
func (s *Store) Changed(rel string, fp Fingerprint) (bool, error) {
	doc, err := s.Load(rel)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return true, nil
		}
		return false, err
	}
	return doc.Fingerprint != fp, nil
}

// validatePath rejects empty names, absolute paths and anything escaping
// the notes directory.
func validatePath(rel string) error {
	if rel == "" || strings.TrimSuffix(rel, noteExt) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if filepath.IsAbs(rel) || strings.HasPrefix(rel, "/") {
		return fmt.Errorf("%w: %q is absolute", ErrInvalidName, rel)
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if part == ".." {
			return fmt.Errorf("%w: %q leaves the notes directory", ErrInvalidName, rel)
		}
		if part == "" || part == "." {
			return fmt.Errorf("%w: %q has an empty path element", ErrInvalidName, rel)
		}
	}
	return nil
}

// readTitle returns the first "# " heading, or the file stem.
func readTitle(path, name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	f, err := os.Open(path)
	if err != nil {
		return stem
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if title, ok := strings.CutPrefix(line, "# "); ok {
			if title = strings.TrimSpace(title); title != "" {
				return title
			}
		}
	}
	return stem
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	// Hidden so the watcher ignores it until the rename.
	temp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0o644); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Package store remembers per-note editor state in a SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/folio/internal/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS note_state (
	path       TEXT PRIMARY KEY,
	cursor_row INTEGER NOT NULL DEFAULT 0,
	cursor_col INTEGER NOT NULL DEFAULT 0,
	opened_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_note_state_opened_at ON note_state(opened_at DESC);
`

// Store wraps the state database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*Store, error) {
	log.Debug(log.CatStore, "Opening state database", "path", path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		log.ErrorErr(log.CatStore, "Failed to open database", err, "path", path)
		return nil, fmt.Errorf("opening state database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		log.ErrorErr(log.CatStore, "Failed to apply schema", err, "path", path)
		return nil, fmt.Errorf("applying state schema: %w", err)
	}

	log.Info(log.CatStore, "Opened state database", "path", path)
	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Cursor returns the remembered cursor for a note. ok is false when the
// note has no saved state.
func (s *Store) Cursor(notePath string) (row, col int, ok bool, err error) {
	err = s.db.QueryRow(
		`SELECT cursor_row, cursor_col FROM note_state WHERE path = ?`, notePath,
	).Scan(&row, &col)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, fmt.Errorf("reading cursor for %s: %w", notePath, err)
	}
	return row, col, true, nil
}

// SaveCursor records the cursor and marks the note as opened at at.
func (s *Store) SaveCursor(notePath string, row, col int, at time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO note_state (path, cursor_row, cursor_col, opened_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			cursor_row = excluded.cursor_row,
			cursor_col = excluded.cursor_col,
			opened_at  = excluded.opened_at`,
		notePath, row, col, at.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("saving cursor for %s: %w", notePath, err)
	}
	return nil
}

// Recent returns up to limit note paths, most recently opened first.
func (s *Store) Recent(limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}
	rows, err := s.db.Query(
		`SELECT path FROM note_state ORDER BY opened_at DESC, path LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing recent notes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	paths := []string{}
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning recent notes: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// Forget drops all state for a note.
func (s *Store) Forget(notePath string) error {
	if _, err := s.db.Exec(`DELETE FROM note_state WHERE path = ?`, notePath); err != nil {
		return fmt.Errorf("forgetting %s: %w", notePath, err)
	}
	return nil
}

// Move carries a note's state over to its new path, replacing anything
// recorded for the new path.
func (s *Store) Move(from, to string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("moving %s: %w", from, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM note_state WHERE path = ?`, to); err != nil {
		return fmt.Errorf("moving %s: %w", from, err)
	}
	if _, err := tx.Exec(`UPDATE note_state SET path = ? WHERE path = ?`, to, from); err != nil {
		return fmt.Errorf("moving %s: %w", from, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("moving %s: %w", from, err)
	}
	return nil
}

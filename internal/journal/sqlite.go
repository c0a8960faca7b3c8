package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/closewatch/closewatch/internal/colors"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
	id TEXT PRIMARY KEY,
	event TEXT NOT NULL,
	window TEXT NOT NULL DEFAULT '',
	watcher TEXT NOT NULL DEFAULT '',
	detail TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_window ON entries(window);
CREATE INDEX IF NOT EXISTS idx_entries_event ON entries(event);
CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at);
`

// SQLiteStore persists journal entries in a single sqlite database file.
type SQLiteStore struct {
	db         *sql.DB
	path       string
	maxEntries int
}

// NewSQLiteStore opens (creating if needed) the journal database at dbPath.
// maxEntries caps the number of retained rows; zero or negative means no cap.
func NewSQLiteStore(dbPath string, maxEntries int) (*SQLiteStore, error) {
	start := time.Now()
	colors.StructuredDebug("journal", "open", "started", nil, "", nil)
	if strings.TrimSpace(dbPath) == "" {
		err := fmt.Errorf("journal sqlite: database path cannot be empty")
		colors.StructuredError("journal", "open", "failed", err, "", nil)
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		err = fmt.Errorf("journal sqlite: create database directory: %w", err)
		colors.StructuredError("journal", "open", "failed", err, "", nil)
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		err = fmt.Errorf("journal sqlite: open database: %w", err)
		colors.StructuredError("journal", "open", "failed", err, "", nil)
		return nil, err
	}

	s := &SQLiteStore{db: db, path: dbPath, maxEntries: maxEntries}
	if err := s.init(); err != nil {
		_ = db.Close()
		colors.StructuredError("journal", "open", "failed", err, "", map[string]interface{}{"duration_seconds": time.Since(start).Seconds()})
		return nil, err
	}
	colors.StructuredDebug("journal", "open", "completed", nil, "", map[string]interface{}{"duration_seconds": time.Since(start).Seconds()})
	return s, nil
}

func (s *SQLiteStore) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("journal sqlite: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("journal sqlite: initialize schema: %w", err)
	}
	return nil
}

// Append stores one lifecycle event and returns its id.
func (s *SQLiteStore) Append(event, window, watcher, detail string) (string, error) {
	if strings.TrimSpace(event) == "" {
		return "", fmt.Errorf("journal sqlite: event cannot be empty")
	}

	id := newEntryID()
	_, err := s.db.Exec(
		"INSERT INTO entries (id, event, window, watcher, detail, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, event, window, watcher, detail, utcNow(),
	)
	if err != nil {
		return "", fmt.Errorf("journal sqlite: append entry: %w", err)
	}
	if err := s.trim(); err != nil {
		return "", err
	}
	return id, nil
}

// trim drops the oldest rows once the retention cap is exceeded. ULIDs sort
// lexically by creation time, so ordering by id is ordering by age.
func (s *SQLiteStore) trim() error {
	if s.maxEntries <= 0 {
		return nil
	}
	_, err := s.db.Exec(
		"DELETE FROM entries WHERE id NOT IN (SELECT id FROM entries ORDER BY id DESC LIMIT ?)",
		s.maxEntries,
	)
	if err != nil {
		return fmt.Errorf("journal sqlite: trim entries: %w", err)
	}
	return nil
}

// Get returns a single entry by id.
func (s *SQLiteStore) Get(id string) (Entry, error) {
	if strings.TrimSpace(id) == "" {
		return Entry{}, ErrInvalidEntryID
	}

	row := s.db.QueryRow(
		"SELECT id, event, window, watcher, detail, created_at FROM entries WHERE id = ?",
		id,
	)
	var e Entry
	err := row.Scan(&e.ID, &e.Event, &e.Window, &e.Watcher, &e.Detail, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrEntryNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("journal sqlite: get entry: %w", err)
	}
	return e, nil
}

// List returns entries matching the filter, oldest first. When a limit is
// set, only the most recent matching entries are returned.
func (s *SQLiteStore) List(filter Filter) ([]Entry, error) {
	query := "SELECT id, event, window, watcher, detail, created_at FROM entries"
	var conds []string
	var args []interface{}
	if filter.Window != "" {
		conds = append(conds, "window = ?")
		args = append(args, filter.Window)
	}
	if filter.Event != "" {
		conds = append(conds, "event = ?")
		args = append(args, filter.Event)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("journal sqlite: list entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Event, &e.Window, &e.Watcher, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("journal sqlite: scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal sqlite: iterate entries: %w", err)
	}

	// Rows were read newest first to honor the limit; present oldest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Count returns the number of stored entries.
func (s *SQLiteStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("journal sqlite: count entries: %w", err)
	}
	return n, nil
}

// Cleanup removes entries older than daysThreshold days and reports how many
// rows were removed. With dryRun it only reports the count.
func (s *SQLiteStore) Cleanup(daysThreshold int, dryRun bool) (int, error) {
	if daysThreshold < 0 {
		return 0, fmt.Errorf("journal sqlite: days threshold must be >= 0")
	}
	cutoff := cleanupCutoff(daysThreshold)

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM entries WHERE created_at < ?", cutoff).Scan(&count); err != nil {
		return 0, fmt.Errorf("journal sqlite: count entries for cleanup: %w", err)
	}
	if count == 0 || dryRun {
		return count, nil
	}

	if _, err := s.db.Exec("DELETE FROM entries WHERE created_at < ?", cutoff); err != nil {
		return 0, fmt.Errorf("journal sqlite: cleanup old entries: %w", err)
	}
	return count, nil
}

// Path returns the database file location.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("journal sqlite: close database: %w", err)
	}
	return nil
}

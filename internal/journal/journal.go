// Package journal persists watcher lifecycle events so dismissal behavior
// can be inspected after the fact, from the CLI or the demo's tail pane.
package journal

import (
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	// ErrInvalidEntryID indicates a malformed or empty entry id.
	ErrInvalidEntryID = errors.New("invalid journal entry ID")
	// ErrEntryNotFound indicates no journal entry matches the given id.
	ErrEntryNotFound = errors.New("journal entry not found")
)

// Entry is one recorded lifecycle event.
type Entry struct {
	ID        string // ULID; lexical order is creation order
	Event     string // lifecycle op name (registered, close, dismiss-signal, ...)
	Window    string // window label, empty for window-agnostic events
	Watcher   string // watcher name, empty for manager-level events
	Detail    string // free-form context, e.g. "group 2"
	CreatedAt string // RFC3339 UTC
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	Window string
	Event  string
	Limit  int // keep only the most recent Limit entries; 0 means all
}

// Store is the persistence interface for lifecycle entries.
type Store interface {
	Append(event, window, watcher, detail string) (string, error)
	Get(id string) (Entry, error)
	List(filter Filter) ([]Entry, error)
	Count() (int, error)
	Cleanup(daysThreshold int, dryRun bool) (int, error)
	Path() string
	Close() error
}

func newEntryID() string {
	return ulid.Make().String()
}

func utcNow() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05Z")
}

func cleanupCutoff(daysThreshold int) string {
	return time.Now().UTC().AddDate(0, 0, -daysThreshold).Format("2006-01-02T15:04:05Z")
}

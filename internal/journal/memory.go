package journal

import (
	"fmt"
	"strings"
	"sync"
)

// MemoryStore keeps entries in process memory. It backs the demo when
// persistence is disabled and keeps tests off the filesystem.
type MemoryStore struct {
	mu         sync.Mutex
	entries    []Entry
	maxEntries int
}

// NewMemoryStore creates an in-memory journal. maxEntries caps the number of
// retained entries; zero or negative means no cap.
func NewMemoryStore(maxEntries int) *MemoryStore {
	return &MemoryStore{maxEntries: maxEntries}
}

// Append stores one lifecycle event and returns its id.
func (s *MemoryStore) Append(event, window, watcher, detail string) (string, error) {
	if strings.TrimSpace(event) == "" {
		return "", fmt.Errorf("journal memory: event cannot be empty")
	}

	e := Entry{
		ID:        newEntryID(),
		Event:     event,
		Window:    window,
		Watcher:   watcher,
		Detail:    detail,
		CreatedAt: utcNow(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	if s.maxEntries > 0 && len(s.entries) > s.maxEntries {
		s.entries = append([]Entry(nil), s.entries[len(s.entries)-s.maxEntries:]...)
	}
	return e.ID, nil
}

// Get returns a single entry by id.
func (s *MemoryStore) Get(id string) (Entry, error) {
	if strings.TrimSpace(id) == "" {
		return Entry{}, ErrInvalidEntryID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, ErrEntryNotFound
}

// List returns entries matching the filter, oldest first. When a limit is
// set, only the most recent matching entries are returned.
func (s *MemoryStore) List(filter Filter) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []Entry
	for _, e := range s.entries {
		if filter.Window != "" && e.Window != filter.Window {
			continue
		}
		if filter.Event != "" && e.Event != filter.Event {
			continue
		}
		matched = append(matched, e)
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[len(matched)-filter.Limit:]
	}
	return append([]Entry(nil), matched...), nil
}

// Count returns the number of stored entries.
func (s *MemoryStore) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries), nil
}

// Cleanup removes entries older than daysThreshold days and reports how many
// were removed. With dryRun it only reports the count.
func (s *MemoryStore) Cleanup(daysThreshold int, dryRun bool) (int, error) {
	if daysThreshold < 0 {
		return 0, fmt.Errorf("journal memory: days threshold must be >= 0")
	}
	cutoff := cleanupCutoff(daysThreshold)

	s.mu.Lock()
	defer s.mu.Unlock()

	// RFC3339 UTC timestamps compare correctly as strings.
	kept := s.entries[:0:0]
	removed := 0
	for _, e := range s.entries {
		if e.CreatedAt < cutoff {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	if !dryRun {
		s.entries = kept
	}
	return removed, nil
}

// Path returns the empty string; the memory store has no backing file.
func (s *MemoryStore) Path() string {
	return ""
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}

package journal

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/closewatch/closewatch/internal/colors"
	"github.com/closewatch/closewatch/internal/config"
)

const (
	// BackendSQLite selects the sqlite-backed journal.
	BackendSQLite = "sqlite"
	// BackendMemory selects the in-memory journal.
	BackendMemory = "memory"

	journalDBFileName = "journal.db"
)

var _ Store = (*SQLiteStore)(nil)
var _ Store = (*MemoryStore)(nil)

// NewFromConfig creates the journal store selected by configuration. When
// journaling is disabled the events still flow into a memory store so the
// demo's tail pane keeps working.
func NewFromConfig() (Store, error) {
	config.Load()
	if !config.GetBool("journal_enabled", true) {
		return NewMemoryStore(maxEntriesFromConfig()), nil
	}
	return NewForBackend(config.Get("journal_backend", BackendSQLite))
}

// NewForBackend creates a journal store for the provided backend name.
func NewForBackend(backend string) (Store, error) {
	maxEntries := maxEntriesFromConfig()
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendSQLite:
		store, err := NewSQLiteStore(DefaultPath(), maxEntries)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite journal, falling back to memory: %v", err))
			return NewMemoryStore(maxEntries), nil
		}
		return store, nil
	case BackendMemory:
		return NewMemoryStore(maxEntries), nil
	default:
		colors.Warning(fmt.Sprintf("unknown journal backend '%s', falling back to memory", backend))
		return NewMemoryStore(maxEntries), nil
	}
}

// DefaultPath returns the sqlite journal location derived from state_dir.
func DefaultPath() string {
	config.Load()
	return filepath.Join(config.Get("state_dir", "."), journalDBFileName)
}

func maxEntriesFromConfig() int {
	return config.GetInt("max_journal_entries", 1000)
}

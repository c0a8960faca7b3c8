package journal

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "journal.db")
	s, err := NewSQLiteStore(dbPath, 0)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestSQLiteAppendAndGetEntry(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Append("registered", "main", "dialog", "group 1")
	require.NoError(t, err)
	require.Len(t, id, 26)

	e, err := s.Get(id)
	require.NoError(t, err)
	require.Equal(t, id, e.ID)
	require.Equal(t, "registered", e.Event)
	require.Equal(t, "main", e.Window)
	require.Equal(t, "dialog", e.Watcher)
	require.Equal(t, "group 1", e.Detail)

	_, err = time.Parse("2006-01-02T15:04:05Z", e.CreatedAt)
	require.NoError(t, err)
}

func TestSQLiteAppendRequiresEvent(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Append("  ", "main", "dialog", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "event cannot be empty")
}

func TestSQLiteListFilters(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Append("registered", "main", "dialog", "group 1")
	require.NoError(t, err)
	_, err = s.Append("registered", "settings", "prompt", "group 1")
	require.NoError(t, err)
	_, err = s.Append("close", "main", "dialog", "")
	require.NoError(t, err)

	entries, err := s.List(Filter{Window: "main"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "registered", entries[0].Event)
	require.Equal(t, "close", entries[1].Event)

	entries, err = s.List(Filter{Event: "registered"})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entries, err = s.List(Filter{Window: "settings", Event: "registered"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "prompt", entries[0].Watcher)
}

func TestSQLiteListOrdersOldestFirstAndHonorsLimit(t *testing.T) {
	s := newTestStore(t)

	for _, watcher := range []string{"a", "b", "c"} {
		_, err := s.Append("registered", "main", watcher, "")
		require.NoError(t, err)
	}

	entries, err := s.List(Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "a", entries[0].Watcher)
	require.Equal(t, "c", entries[2].Watcher)

	entries, err = s.List(Filter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "b", entries[0].Watcher)
	require.Equal(t, "c", entries[1].Watcher)
}

func TestSQLiteListEmptyStore(t *testing.T) {
	s := newTestStore(t)

	entries, err := s.List(Filter{})
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestSQLiteTrimKeepsMostRecentEntries(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")
	s, err := NewSQLiteStore(dbPath, 3)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	ids := make([]string, 0, 5)
	for _, watcher := range []string{"a", "b", "c", "d", "e"} {
		id, err := s.Append("registered", "main", watcher, "")
		require.NoError(t, err)
		ids = append(ids, id)
	}

	count, err := s.Count()
	require.NoError(t, err)
	require.Equal(t, 3, count)

	_, err = s.Get(ids[0])
	require.True(t, errors.Is(err, ErrEntryNotFound))
	_, err = s.Get(ids[1])
	require.True(t, errors.Is(err, ErrEntryNotFound))
	_, err = s.Get(ids[4])
	require.NoError(t, err)
}

func TestSQLiteCleanupRemovesOldEntries(t *testing.T) {
	s := newTestStore(t)

	oldID, err := s.Append("close", "main", "dialog", "")
	require.NoError(t, err)
	newID, err := s.Append("registered", "main", "dialog", "group 1")
	require.NoError(t, err)

	stale := time.Now().UTC().AddDate(0, 0, -10).Format("2006-01-02T15:04:05Z")
	_, err = s.db.Exec("UPDATE entries SET created_at = ? WHERE id = ?", stale, oldID)
	require.NoError(t, err)

	removed, err := s.Cleanup(7, true)
	require.NoError(t, err)
	require.Equal(t, 1, removed)
	_, err = s.Get(oldID)
	require.NoError(t, err)

	removed, err = s.Cleanup(7, false)
	require.NoError(t, err)
	require.Equal(t, 1, removed)
	_, err = s.Get(oldID)
	require.True(t, errors.Is(err, ErrEntryNotFound))
	_, err = s.Get(newID)
	require.NoError(t, err)
}

func TestSQLiteCleanupRejectsNegativeThreshold(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Cleanup(-1, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "days threshold must be >= 0")
}

func TestSQLiteGetErrors(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get("")
	require.True(t, errors.Is(err, ErrInvalidEntryID))

	_, err = s.Get("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.True(t, errors.Is(err, ErrEntryNotFound))
}

func TestSQLiteReopenPersistsEntries(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	s, err := NewSQLiteStore(dbPath, 0)
	require.NoError(t, err)
	id, err := s.Append("dismiss-signal", "main", "", "")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(dbPath, 0)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, reopened.Close())
	})

	e, err := reopened.Get(id)
	require.NoError(t, err)
	require.Equal(t, "dismiss-signal", e.Event)
	require.Equal(t, dbPath, reopened.Path())
}

func TestSQLiteRejectsEmptyPath(t *testing.T) {
	_, err := NewSQLiteStore("   ", 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "database path cannot be empty")
}

package journal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryAppendAndGet(t *testing.T) {
	s := NewMemoryStore(0)

	id, err := s.Append("registered", "main", "dialog", "group 1")
	require.NoError(t, err)
	require.Len(t, id, 26)

	e, err := s.Get(id)
	require.NoError(t, err)
	require.Equal(t, "registered", e.Event)
	require.Equal(t, "main", e.Window)
	require.Equal(t, "dialog", e.Watcher)
	require.Equal(t, "group 1", e.Detail)
}

func TestMemoryAppendRequiresEvent(t *testing.T) {
	s := NewMemoryStore(0)

	_, err := s.Append("", "main", "dialog", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "event cannot be empty")
}

func TestMemoryListFiltersAndLimit(t *testing.T) {
	s := NewMemoryStore(0)

	_, err := s.Append("registered", "main", "a", "")
	require.NoError(t, err)
	_, err = s.Append("registered", "settings", "b", "")
	require.NoError(t, err)
	_, err = s.Append("close", "main", "a", "")
	require.NoError(t, err)

	entries, err := s.List(Filter{Window: "main"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "registered", entries[0].Event)
	require.Equal(t, "close", entries[1].Event)

	entries, err = s.List(Filter{Event: "registered", Limit: 1})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "b", entries[0].Watcher)
}

func TestMemoryListReturnsDetachedSlice(t *testing.T) {
	s := NewMemoryStore(0)

	_, err := s.Append("registered", "main", "a", "")
	require.NoError(t, err)

	entries, err := s.List(Filter{})
	require.NoError(t, err)
	entries[0].Watcher = "mutated"

	again, err := s.List(Filter{})
	require.NoError(t, err)
	require.Equal(t, "a", again[0].Watcher)
}

func TestMemoryTrimKeepsMostRecentEntries(t *testing.T) {
	s := NewMemoryStore(2)

	for _, watcher := range []string{"a", "b", "c"} {
		_, err := s.Append("registered", "main", watcher, "")
		require.NoError(t, err)
	}

	count, err := s.Count()
	require.NoError(t, err)
	require.Equal(t, 2, count)

	entries, err := s.List(Filter{})
	require.NoError(t, err)
	require.Equal(t, "b", entries[0].Watcher)
	require.Equal(t, "c", entries[1].Watcher)
}

func TestMemoryCleanup(t *testing.T) {
	s := NewMemoryStore(0)

	oldID, err := s.Append("close", "main", "dialog", "")
	require.NoError(t, err)
	_, err = s.Append("registered", "main", "dialog", "")
	require.NoError(t, err)

	s.mu.Lock()
	s.entries[0].CreatedAt = time.Now().UTC().AddDate(0, 0, -10).Format("2006-01-02T15:04:05Z")
	s.mu.Unlock()

	removed, err := s.Cleanup(7, true)
	require.NoError(t, err)
	require.Equal(t, 1, removed)
	count, err := s.Count()
	require.NoError(t, err)
	require.Equal(t, 2, count)

	removed, err = s.Cleanup(7, false)
	require.NoError(t, err)
	require.Equal(t, 1, removed)
	count, err = s.Count()
	require.NoError(t, err)
	require.Equal(t, 1, count)

	_, err = s.Get(oldID)
	require.True(t, errors.Is(err, ErrEntryNotFound))
}

func TestMemoryCleanupRejectsNegativeThreshold(t *testing.T) {
	s := NewMemoryStore(0)

	_, err := s.Cleanup(-1, false)
	require.Error(t, err)
}

func TestMemoryPathAndClose(t *testing.T) {
	s := NewMemoryStore(0)

	require.Equal(t, "", s.Path())
	require.NoError(t, s.Close())
}

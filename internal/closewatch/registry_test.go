package closewatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryManagers(t *testing.T) {
	t.Run("ManagerForCreatesOncePerWindow", func(t *testing.T) {
		reg := NewRegistry(nil, nil)
		w1 := newTestWindow("one")
		w2 := newTestWindow("two")

		m1 := reg.ManagerFor(w1)
		require.Same(t, m1, reg.ManagerFor(w1))
		require.NotSame(t, m1, reg.ManagerFor(w2))
		require.Equal(t, 2, reg.Size())
	})

	t.Run("ReleaseDeactivatesOutstandingHandles", func(t *testing.T) {
		reg := NewRegistry(nil, nil)
		w := newTestWindow("main")
		r := reg.ManagerFor(w).Register("dialog", nil, nil)
		require.True(t, r.IsActive())

		reg.Release(w)
		require.False(t, r.IsActive())
		require.Equal(t, 0, reg.Size())

		// Releasing an unknown window is a no-op.
		reg.Release(newTestWindow("other"))
	})

	t.Run("ActivationThroughTheRegistryCreatesTheManager", func(t *testing.T) {
		reg := NewRegistry(nil, nil)
		w := newTestWindow("main")
		reg.NotifyUserActivation(w)
		require.Equal(t, 1, reg.Size())
		require.Equal(t, 2, reg.ManagerFor(w).AllowedNumberOfGroups())
	})
}

func TestRequestCloseWatchers(t *testing.T) {
	t.Run("ClosesTheGroupInReverseRegistrationOrder", func(t *testing.T) {
		reg := NewRegistry(nil, nil)
		w := newTestWindow("main")
		m := reg.ManagerFor(w)

		var order []string
		m.Register("a", nil, func() { order = append(order, "a") })
		m.Register("b", nil, func() { order = append(order, "b") })

		require.True(t, reg.RequestCloseWatchers(w))
		require.Equal(t, []string{"b", "a"}, order)
		require.Equal(t, 0, m.GroupCount())
	})

	t.Run("OnlyTheLatestGroupIsDismissed", func(t *testing.T) {
		reg := NewRegistry(nil, nil)
		w := newTestWindow("main")
		m := reg.ManagerFor(w)

		a := m.Register("a", nil, nil)
		reg.NotifyUserActivation(w)
		b := m.Register("b", nil, nil)

		require.True(t, reg.RequestCloseWatchers(w))
		require.False(t, b.IsActive())
		require.True(t, a.IsActive())
		// The gesture also spent the extra group slot.
		require.Equal(t, 1, m.AllowedNumberOfGroups())

		require.True(t, reg.RequestCloseWatchers(w))
		require.False(t, a.IsActive())
	})

	t.Run("NoWatchersReportsNothingProcessed", func(t *testing.T) {
		reg := NewRegistry(nil, nil)
		w := newTestWindow("main")

		require.False(t, reg.RequestCloseWatchers(w))
	})

	t.Run("AnEmptyDispatchStillSpendsTheBudget", func(t *testing.T) {
		reg := NewRegistry(nil, nil)
		w := newTestWindow("main")
		m := reg.ManagerFor(w)
		m.NotifyUserActivation()
		require.Equal(t, 2, m.AllowedNumberOfGroups())

		require.False(t, reg.RequestCloseWatchers(w))
		require.Equal(t, 1, m.AllowedNumberOfGroups())

		// The budget never drops below one.
		require.False(t, reg.RequestCloseWatchers(w))
		require.Equal(t, 1, m.AllowedNumberOfGroups())
	})

	t.Run("ASuppressedWatcherStillConsumesTheGesture", func(t *testing.T) {
		reg := NewRegistry(nil, nil)
		w := newTestWindow("main")
		m := reg.ManagerFor(w)
		r := m.Register("dialog", func() bool { return true }, nil)
		m.NotifyUserActivation()

		require.True(t, reg.RequestCloseWatchers(w))
		require.True(t, r.IsActive())
		require.Equal(t, 1, m.AllowedNumberOfGroups())
	})

	t.Run("WatchersRemovedMidWalkAreSkipped", func(t *testing.T) {
		reg := NewRegistry(nil, nil)
		w := newTestWindow("main")
		m := reg.ManagerFor(w)

		aCloses := 0
		var a *Registration
		a = m.Register("a", nil, func() { aCloses++ })
		// b is asked first; its close action tears a down, so the walk
		// must skip a instead of closing it again.
		m.Register("b", nil, func() { a.Destroy() })

		require.True(t, reg.RequestCloseWatchers(w))
		require.Equal(t, 0, aCloses)
		require.Equal(t, 0, m.GroupCount())
	})

	t.Run("ADismissalArrivingMidCancelDoesNotRecurse", func(t *testing.T) {
		reg := NewRegistry(nil, nil)
		w := newTestWindow("main")
		m := reg.ManagerFor(w)

		aCancels, bCancels := 0, 0
		a := m.Register("a", func() bool { aCancels++; return false }, nil)
		b := m.Register("b", func() bool {
			bCancels++
			// Simulates a cancel handler that itself triggers the global
			// dismissal path. b is mid-cancel, so only a is processed.
			reg.RequestCloseWatchers(w)
			return false
		}, nil)

		require.True(t, reg.RequestCloseWatchers(w))
		require.Equal(t, 1, aCancels)
		require.Equal(t, 1, bCancels)
		require.False(t, a.IsActive())
		require.False(t, b.IsActive())
	})

	t.Run("RecorderSeesOneDismissSignalPerGesture", func(t *testing.T) {
		rec := &captureRecorder{}
		reg := NewRegistry(nil, rec)
		w := newTestWindow("main")
		reg.ManagerFor(w).Register("dialog", nil, nil)

		reg.RequestCloseWatchers(w)
		require.Equal(t, []string{
			"registered/dialog/group 1",
			"close/dialog/",
			"dismiss-signal//",
		}, rec.events)
	})
}

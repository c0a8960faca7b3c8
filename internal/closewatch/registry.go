package closewatch

import (
	"github.com/closewatch/closewatch/internal/logging"
)

// Registry maps window identities to their managers with create-or-get
// semantics: the first lookup for a window creates its manager, and every
// later lookup returns that same manager, so no two managers ever coexist
// for one window.
//
// A Registry is owned by a single execution context (one UI goroutine) and
// is not safe for concurrent use. Rather than living as ambient process
// state, it is passed explicitly to whoever needs it, the same way the
// hosting application passes its storage or its logger around.
type Registry struct {
	managers map[Window]*Manager
	log      logging.Logger
	rec      Recorder
}

// NewRegistry creates a registry. A nil logger falls back to the process
// logger (a no-op until logging is initialized); a nil recorder drops all
// lifecycle events.
func NewRegistry(log logging.Logger, rec Recorder) *Registry {
	if log == nil {
		log = logging.GetGlobal()
	}
	if rec == nil {
		rec = NopRecorder{}
	}
	return &Registry{
		managers: make(map[Window]*Manager),
		log:      log,
		rec:      rec,
	}
}

// ManagerFor returns the manager for w, creating and remembering one on
// first use.
func (reg *Registry) ManagerFor(w Window) *Manager {
	if m, ok := reg.managers[w]; ok {
		return m
	}
	m := newManager(w, reg)
	reg.managers[w] = m
	return m
}

// Release drops w's manager. Call it when the window itself is torn down;
// registrations still held by callers become permanently inactive. Releasing
// an unknown window is a no-op.
func (reg *Registry) Release(w Window) {
	m, ok := reg.managers[w]
	if !ok {
		return
	}
	// Detach every remaining registration so IsActive flips false even for
	// handles that outlive the window.
	m.groups = nil
	delete(reg.managers, w)
	reg.rec.Record(OpWindowReleased, windowLabel(w), "", "")
	reg.log.Debug("released close watcher manager", "window", windowLabel(w))
}

// NotifyUserActivation forwards one qualifying user activation to w's
// manager, creating the manager if the window has none yet.
func (reg *Registry) NotifyUserActivation(w Window) {
	reg.ManagerFor(w).NotifyUserActivation()
}

// RequestCloseWatchers dispatches one dismissal signal to w's watchers.
//
// The most recently created group is walked in reverse registration order
// (last registered, first asked) and each member's RequestClose runs until
// one reports false. RequestClose currently returns true on every path, so
// one signal exhausts the group.
//
// The walk operates on a snapshot of the group taken up front: close and
// cancel actions routinely mutate the live group mid-walk, and the snapshot
// keeps the processing order pinned. Members that lost their group slot
// while the walk was under way are skipped.
//
// Whatever happened above, a dismissal signal spends one unit of group
// budget: if more than one group is currently allowed, the allowance drops
// by one. The return value reports whether at least one registration was
// processed.
func (reg *Registry) RequestCloseWatchers(w Window) bool {
	m := reg.ManagerFor(w)
	processed := false
	for i, snapshot := 0, m.lastGroupSnapshot(); i < len(snapshot); i++ {
		r := snapshot[len(snapshot)-1-i]
		if !r.IsActive() {
			continue
		}
		processed = true
		if !r.RequestClose() {
			break
		}
	}
	m.consumeGroupBudget()
	m.record(OpDismissSignal, "", "")
	reg.log.Debug("dismissal signal dispatched",
		"window", windowLabel(w),
		"processed", processed,
		"allowed_groups", m.allowedNumberOfGroups,
	)
	return processed
}

// Size returns how many windows currently have managers.
func (reg *Registry) Size() int {
	return len(reg.managers)
}

package closewatch

import (
	"fmt"

	"github.com/closewatch/closewatch/internal/logging"
)

// Manager tracks the close-intent registrations of one window. It owns an
// ordered sequence of groups, each an ordered sequence of registrations,
// plus the budget deciding how many distinct groups may exist and the
// one-shot gate that lets a user activation raise that budget.
//
// Registrations created before any further user activation pile into the
// same group and therefore share a single dismissal slot; that is the whole
// point of the grouping.
type Manager struct {
	window   Window
	registry *Registry

	groups [][]*Registration

	// allowedNumberOfGroups caps how many distinct groups may exist before
	// new registrations fold into the last group. Starts at 1 and never
	// drops below 1.
	allowedNumberOfGroups int

	// nextUserInteractionAllowsANewGroup arms the budget increment. The
	// manager consumes it on the first qualifying activation and never
	// re-arms it itself; collaborators do that via RearmActivationGate.
	nextUserInteractionAllowsANewGroup bool

	// seq numbers anonymous registrations for logs.
	seq int
}

func newManager(w Window, reg *Registry) *Manager {
	return &Manager{
		window:                             w,
		registry:                           reg,
		allowedNumberOfGroups:              1,
		nextUserInteractionAllowsANewGroup: true,
	}
}

// Window returns the window this manager belongs to.
func (m *Manager) Window() Window { return m.window }

// Register creates a registration and places it into a group: a fresh group
// when the budget still has room, otherwise the most recent group. Either
// callback may be nil; a nil cancel action never suppresses.
func (m *Manager) Register(name string, cancel CancelFunc, closeFn CloseFunc) *Registration {
	if name == "" {
		m.seq++
		name = fmt.Sprintf("watcher-%d", m.seq)
	}
	r := &Registration{
		manager:      m,
		window:       m.window,
		name:         name,
		cancelAction: cancel,
		closeAction:  closeFn,
	}
	if len(m.groups) < m.allowedNumberOfGroups {
		m.groups = append(m.groups, []*Registration{r})
	} else {
		last := len(m.groups) - 1
		m.groups[last] = append(m.groups[last], r)
	}
	m.log().Debug("registered close watcher",
		"watcher", name,
		"groups", len(m.groups),
		"allowed_groups", m.allowedNumberOfGroups,
	)
	m.record(OpRegistered, name, fmt.Sprintf("group %d", len(m.groups)))
	return r
}

// NotifyUserActivation reports one qualifying user activation. Callers are
// responsible for the qualification itself (trusted, non-Escape, not a
// mouse pointer-down; see the uievent package); the manager only applies
// the gate: if armed, the group budget grows by one and the gate disarms.
// Further activations are ignored until something re-arms the gate.
func (m *Manager) NotifyUserActivation() {
	if !m.nextUserInteractionAllowsANewGroup {
		m.record(OpActivationIgnored, "", "")
		return
	}
	m.allowedNumberOfGroups++
	m.nextUserInteractionAllowsANewGroup = false
	m.log().Debug("user activation granted a group slot",
		"allowed_groups", m.allowedNumberOfGroups,
	)
	m.record(OpActivationGranted, "", fmt.Sprintf("allowed %d", m.allowedNumberOfGroups))
}

// RearmActivationGate re-arms the one-shot activation gate. The manager
// never does this on its own; it is the collaborator's call (the overlay
// stack re-arms after each registration it makes, which matches how the
// platform model spends and restores the gate).
func (m *Manager) RearmActivationGate() {
	m.nextUserInteractionAllowsANewGroup = true
}

// ActivationGateArmed reports whether the next qualifying activation would
// raise the group budget.
func (m *Manager) ActivationGateArmed() bool {
	return m.nextUserInteractionAllowsANewGroup
}

// AllowedNumberOfGroups returns the current group budget.
func (m *Manager) AllowedNumberOfGroups() int {
	return m.allowedNumberOfGroups
}

// GroupCount returns how many groups currently exist. Empty groups are
// pruned eagerly, so every counted group has at least one registration.
func (m *Manager) GroupCount() int {
	return len(m.groups)
}

// Groups returns the registration names per group, oldest group first,
// registration order within each group. It is a snapshot for inspection
// and rendering; mutating it does not touch the manager.
func (m *Manager) Groups() [][]string {
	out := make([][]string, len(m.groups))
	for i, g := range m.groups {
		names := make([]string, len(g))
		for j, r := range g {
			names[j] = r.name
		}
		out[i] = names
	}
	return out
}

// contains reports whether r currently appears in any group.
func (m *Manager) contains(r *Registration) bool {
	for _, g := range m.groups {
		for _, got := range g {
			if got == r {
				return true
			}
		}
	}
	return false
}

// remove deletes r from the group holding it, pruning the group when it
// empties.
func (m *Manager) remove(r *Registration) bool {
	for gi, g := range m.groups {
		for ri, got := range g {
			if got != r {
				continue
			}
			g = append(g[:ri], g[ri+1:]...)
			if len(g) == 0 {
				m.groups = append(m.groups[:gi], m.groups[gi+1:]...)
			} else {
				m.groups[gi] = g
			}
			return true
		}
	}
	return false
}

// lastGroupSnapshot copies the most recent group's membership so dispatch
// can walk it while close actions mutate the live group.
func (m *Manager) lastGroupSnapshot() []*Registration {
	if len(m.groups) == 0 {
		return nil
	}
	last := m.groups[len(m.groups)-1]
	snapshot := make([]*Registration, len(last))
	copy(snapshot, last)
	return snapshot
}

// consumeGroupBudget shrinks the budget back toward 1 after a dismissal
// signal has been spent.
func (m *Manager) consumeGroupBudget() {
	if m.allowedNumberOfGroups > 1 {
		m.allowedNumberOfGroups--
	}
}

func (m *Manager) record(op Op, watcher, detail string) {
	m.registry.rec.Record(op, windowLabel(m.window), watcher, detail)
}

func (m *Manager) log() logging.Logger {
	return m.registry.log
}

// Package tui implements the closewatch workbench: a bubbletea program
// that hosts dialogs and popovers behind close watchers so grouping,
// activation budgets, and dismissal order can be exercised interactively.
package tui

// Window is the workbench's top-level UI context. Watchers consult it for
// liveness and managers key off its identity.
type Window struct {
	name string
	live bool
}

// NewWindow creates a live window with a display name.
func NewWindow(name string) *Window {
	return &Window{name: name, live: true}
}

// Live reports whether the window still hosts UI. Close actions are
// suppressed once it goes dead.
func (w *Window) Live() bool { return w.live }

// Kill marks the window dead. Called on quit, before the program exits.
func (w *Window) Kill() { w.live = false }

// String returns the label used in logs and journal rows.
func (w *Window) String() string { return w.name }

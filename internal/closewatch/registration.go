package closewatch

// CancelFunc decides whether a dismissal should be suppressed. Returning
// true keeps the registration open (the gesture is consumed without
// closing); returning false lets the close proceed.
type CancelFunc func() bool

// CloseFunc performs the actual close side effect (hide the dialog, pop the
// overlay, release focus).
type CloseFunc func()

// Registration is one registered close intent. It is created through
// Manager.Register and stays active until it is closed or destroyed.
//
// Callbacks are invoked directly: a panic inside a cancel or close action
// propagates unmodified to whoever delivered the signal.
type Registration struct {
	manager *Manager
	window  Window
	name    string

	cancelAction CancelFunc
	closeAction  CloseFunc

	// Guards against a cancel action synchronously re-triggering its own
	// cancel path (for example by dispatching another dismissal gesture).
	isRunningCancelAction bool
}

// Name returns the label this registration was created with. Labels only
// feed logs and journal rows; they carry no behavior.
func (r *Registration) Name() string { return r.name }

// IsActive reports whether the registration still appears in one of its
// manager's groups. It has no side effects.
func (r *Registration) IsActive() bool {
	return r.manager.contains(r)
}

// Close removes the registration from its group and fires the close action.
// It is a no-op when the registration is already inactive or when the
// owning window no longer has a UI context; in the latter case the close
// action is silently suppressed, since there is nothing left to close.
func (r *Registration) Close() {
	if !r.IsActive() || !r.window.Live() {
		return
	}
	r.manager.remove(r)
	r.manager.record(OpClose, r.name, "")
	if r.closeAction != nil {
		r.closeAction()
	}
}

// RequestClose runs the cancel/close handshake for one dismissal gesture:
// the cancel action is consulted first, and only if it declines to suppress
// does the registration actually close.
//
// The return value means "this watcher was processed", not the cancellation
// outcome. It is true on every path, including when the registration is
// inactive or mid-cancel. Group dispatch relies on that contract.
func (r *Registration) RequestClose() bool {
	if !r.IsActive() || r.isRunningCancelAction {
		return true
	}
	if r.runCancelAction() {
		r.manager.record(OpCancelSuppressed, r.name, "")
		return true
	}
	r.Close()
	return true
}

// runCancelAction invokes the cancel action under the reentrancy guard.
// The guard is released when the action returns, even on panic, so a later
// gesture can consult the same registration again.
func (r *Registration) runCancelAction() (suppress bool) {
	r.isRunningCancelAction = true
	defer func() { r.isRunningCancelAction = false }()
	if r.cancelAction == nil {
		return false
	}
	return r.cancelAction()
}

// Destroy removes the registration from whatever group contains it without
// firing the close action. Destroying an inactive registration is a no-op,
// so calling it twice is the same as calling it once.
func (r *Registration) Destroy() {
	if r.manager.remove(r) {
		r.manager.record(OpDestroy, r.name, "")
	}
}

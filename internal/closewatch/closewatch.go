// Package closewatch implements close-request watching for terminal UIs.
//
// It emulates the platform "close watcher" model found in web engines:
// transient surfaces (modal dialogs, popovers, menus) register a close
// intent, registrations are clustered into groups gated by user activation,
// and a single dismissal gesture (an Escape press, a back gesture) closes
// the most recent group. Terminals have no native equivalent, so the whole
// model is emulated here.
//
// Everything in this package is confined to a single goroutine, normally
// the UI event loop. Nothing here locks, blocks, or spawns goroutines;
// callbacks run synchronously inside the turn that delivered the signal.
package closewatch

import "fmt"

// Window identifies one top-level UI context. The registry keys managers by
// the Window value itself, so implementations must be comparable; a pointer
// type is the usual choice.
type Window interface {
	// Live reports whether the window still has a usable UI context.
	// Close actions are suppressed once this returns false.
	Live() bool
}

// windowLabel renders a window identity for logs and journal rows.
func windowLabel(w Window) string {
	if s, ok := w.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%p", w)
}

// Op identifies a lifecycle event forwarded to a Recorder.
type Op string

const (
	// OpRegistered is recorded when a registration is placed into a group.
	OpRegistered Op = "registered"
	// OpClose is recorded when a registration's close action fires.
	OpClose Op = "close"
	// OpCancelSuppressed is recorded when a cancel action vetoes dismissal.
	OpCancelSuppressed Op = "cancel-suppressed"
	// OpDestroy is recorded when a registration is torn down without closing.
	OpDestroy Op = "destroy"
	// OpDismissSignal is recorded once per dismissal gesture dispatched.
	OpDismissSignal Op = "dismiss-signal"
	// OpActivationGranted is recorded when a user activation raises the
	// group budget.
	OpActivationGranted Op = "activation-granted"
	// OpActivationIgnored is recorded when a user activation arrives while
	// the gate is disarmed.
	OpActivationIgnored Op = "activation-ignored"
	// OpWindowReleased is recorded when a window's manager is dropped.
	OpWindowReleased Op = "window-released"
)

// Recorder receives lifecycle events from a registry. Implementations must
// be lightweight and must not block; Record is called on the UI goroutine.
type Recorder interface {
	Record(op Op, window, watcher, detail string)
}

// NopRecorder is the default Recorder; it drops events.
type NopRecorder struct{}

// Record implements Recorder by doing nothing.
func (NopRecorder) Record(Op, string, string, string) {}

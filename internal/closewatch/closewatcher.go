package closewatch

import (
	"errors"

	"github.com/closewatch/closewatch/internal/abort"
)

// ErrAborted is returned by New when the supplied abort signal had already
// fired, so there was nothing left to register.
var ErrAborted = errors.New("closewatch: abort signal already fired")

// CancelEvent is handed to cancel listeners when a dismissal gesture
// reaches the watcher. Calling PreventDefault suppresses the close; the
// watcher stays active and the gesture is consumed.
type CancelEvent struct {
	prevented bool
}

// PreventDefault vetoes the pending close.
func (e *CancelEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether any listener vetoed the close.
func (e *CancelEvent) DefaultPrevented() bool { return e.prevented }

// Options configures a CloseWatcher.
type Options struct {
	// Name labels the watcher in logs and journal rows. Optional.
	Name string
	// Signal tears the watcher down when aborted, exactly as if Destroy had
	// been called. Optional.
	Signal *abort.Signal
}

type cancelListener struct {
	id int
	fn func(*CancelEvent)
}

type closeListener struct {
	id int
	fn func()
}

// CloseWatcher is the application-facing handle over one registration. It
// adds listener plumbing and abort-signal teardown on top of the
// registration's behavior and delegates everything else.
type CloseWatcher struct {
	reg *Registration

	cancelListeners []cancelListener
	closeListeners  []closeListener
	nextListenerID  int

	removeAbort func()
}

// New registers a close watcher for w in reg's manager. If opts.Signal has
// already aborted it registers nothing and returns ErrAborted; otherwise an
// abort later destroys the watcher synchronously.
func New(reg *Registry, w Window, opts Options) (*CloseWatcher, error) {
	if opts.Signal != nil && opts.Signal.Aborted() {
		return nil, ErrAborted
	}
	cw := &CloseWatcher{}
	cw.reg = reg.ManagerFor(w).Register(opts.Name, cw.runCancelListeners, cw.runCloseListeners)
	if opts.Signal != nil {
		cw.removeAbort = opts.Signal.OnAbort(cw.Destroy)
	}
	return cw, nil
}

// OnCancel subscribes fn to dismissal attempts. Listeners run in
// subscription order; any of them may veto via the event. The returned
// function unsubscribes.
func (cw *CloseWatcher) OnCancel(fn func(*CancelEvent)) (remove func()) {
	cw.nextListenerID++
	id := cw.nextListenerID
	cw.cancelListeners = append(cw.cancelListeners, cancelListener{id: id, fn: fn})
	return func() {
		for i, l := range cw.cancelListeners {
			if l.id == id {
				cw.cancelListeners = append(cw.cancelListeners[:i], cw.cancelListeners[i+1:]...)
				return
			}
		}
	}
}

// OnClose subscribes fn to the actual close. Listeners run in subscription
// order. The returned function unsubscribes.
func (cw *CloseWatcher) OnClose(fn func()) (remove func()) {
	cw.nextListenerID++
	id := cw.nextListenerID
	cw.closeListeners = append(cw.closeListeners, closeListener{id: id, fn: fn})
	return func() {
		for i, l := range cw.closeListeners {
			if l.id == id {
				cw.closeListeners = append(cw.closeListeners[:i], cw.closeListeners[i+1:]...)
				return
			}
		}
	}
}

// runCancelListeners is the registration's cancel action: it asks every
// cancel listener, and the close is suppressed if any of them prevented
// the default.
func (cw *CloseWatcher) runCancelListeners() bool {
	ev := &CancelEvent{}
	// Walk a copy so listeners may unsubscribe themselves mid-dispatch.
	fired := make([]cancelListener, len(cw.cancelListeners))
	copy(fired, cw.cancelListeners)
	for _, l := range fired {
		l.fn(ev)
	}
	return ev.DefaultPrevented()
}

// runCloseListeners is the registration's close action.
func (cw *CloseWatcher) runCloseListeners() {
	fired := make([]closeListener, len(cw.closeListeners))
	copy(fired, cw.closeListeners)
	for _, l := range fired {
		l.fn()
	}
}

// IsActive reports whether the underlying registration is still grouped.
func (cw *CloseWatcher) IsActive() bool { return cw.reg.IsActive() }

// Close closes the watcher, firing close listeners once.
func (cw *CloseWatcher) Close() { cw.reg.Close() }

// RequestClose runs the cancel/close handshake, exactly as a dismissal
// gesture would for this watcher alone.
func (cw *CloseWatcher) RequestClose() bool { return cw.reg.RequestClose() }

// Destroy tears the watcher down without firing close listeners and
// detaches it from its abort signal. Idempotent.
func (cw *CloseWatcher) Destroy() {
	cw.reg.Destroy()
	if cw.removeAbort != nil {
		cw.removeAbort()
		cw.removeAbort = nil
	}
}

// Name returns the watcher's label.
func (cw *CloseWatcher) Name() string { return cw.reg.Name() }

// Package abort provides a synchronous abort controller/signal pair.
//
// It stands in for the platform AbortSignal in UI code that runs on a
// single goroutine: aborting fires listeners synchronously in the same
// turn, with no goroutines and no channels. That keeps teardown ordering
// deterministic, which context.Context cancellation cannot promise.
//
// Like the rest of the UI plumbing, a signal is confined to one goroutine
// and is not safe for concurrent use.
package abort

import "errors"

// ErrAborted is the reason reported when Abort is called without one.
var ErrAborted = errors.New("aborted")

// Controller owns a Signal and is the only way to abort it.
type Controller struct {
	signal *Signal
}

// NewController creates a controller with a fresh, un-aborted signal.
func NewController() *Controller {
	return &Controller{signal: &Signal{}}
}

// Signal returns the controller's signal for handing to consumers.
func (c *Controller) Signal() *Signal { return c.signal }

// Abort aborts the signal with the given reason (ErrAborted when nil) and
// fires the registered listeners in registration order. Aborting twice is
// a no-op; the first reason wins.
func (c *Controller) Abort(reason error) {
	c.signal.abort(reason)
}

type abortListener struct {
	id int
	fn func()
}

// Signal reports whether an abort happened and lets consumers subscribe to
// it. Listeners added after the abort are never called; consumers should
// check Aborted first, which is race-free on a single goroutine.
type Signal struct {
	aborted   bool
	reason    error
	listeners []abortListener
	nextID    int
}

// Aborted reports whether the signal has fired.
func (s *Signal) Aborted() bool { return s.aborted }

// Reason returns the abort reason, or nil while the signal is live.
func (s *Signal) Reason() error { return s.reason }

// OnAbort registers fn to run when the signal aborts and returns a removal
// function. Removal after firing, or removing twice, is a no-op.
func (s *Signal) OnAbort(fn func()) (remove func()) {
	if s.aborted || fn == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, abortListener{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Signal) abort(reason error) {
	if s.aborted {
		return
	}
	if reason == nil {
		reason = ErrAborted
	}
	s.aborted = true
	s.reason = reason
	// Listeners are detached before firing so one of them registering new
	// listeners cannot extend this abort.
	fired := s.listeners
	s.listeners = nil
	for _, l := range fired {
		l.fn()
	}
}

// Package uievent classifies host input signals for the dismissal core:
// which events count as a dismissal gesture, and which grant an additional
// dismissal-group slot. The model is framework-neutral; UI adapters
// translate their own message types into these values.
package uievent

// Pointer sources.
const (
	PointerMouse = "mouse"
	PointerTouch = "touch"
	PointerPen   = "pen"
)

// KeyEscape is the canonical dismissal key name.
const KeyEscape = "escape"

// Event is any host input signal the classifiers understand.
type Event interface {
	// IsTrusted reports whether the event came from real user input
	// rather than synthetic delivery.
	IsTrusted() bool
}

// KeyEvent is a keyboard signal.
type KeyEvent struct {
	Key              string // lowercase key name, e.g. "escape", "d"
	Release          bool   // true for key release, false for press
	DefaultPrevented bool   // an earlier handler already claimed the key
	Trusted          bool
}

// IsTrusted implements Event.
func (e KeyEvent) IsTrusted() bool { return e.Trusted }

// PointerEvent is a pointer signal.
type PointerEvent struct {
	Source  string // PointerMouse, PointerTouch or PointerPen
	Down    bool   // true for a press, false for a release
	Trusted bool
}

// IsTrusted implements Event.
func (e PointerEvent) IsTrusted() bool { return e.Trusted }

// BackEvent is a back-navigation gesture.
type BackEvent struct {
	Trusted bool
}

// IsTrusted implements Event.
func (e BackEvent) IsTrusted() bool { return e.Trusted }

// IsDismissal reports whether ev is a dismissal gesture: an Escape key
// release that nothing else claimed, or a trusted back navigation. The
// host must dispatch at most one dismissal per gesture.
func IsDismissal(ev Event) bool {
	switch e := ev.(type) {
	case KeyEvent:
		return e.Key == KeyEscape && e.Release && !e.DefaultPrevented
	case BackEvent:
		return e.Trusted
	default:
		return false
	}
}

// QualifiesAsUserActivation reports whether ev should grant the window's
// manager an additional dismissal-group slot. Synthetic events never
// qualify. Escape never qualifies regardless of trust, since the dismissal
// gesture itself must not mint new slots. Mouse pointer-downs never
// qualify; touch and pen do. Back navigations are dismissals, not
// activations.
func QualifiesAsUserActivation(ev Event) bool {
	if ev == nil || !ev.IsTrusted() {
		return false
	}
	switch e := ev.(type) {
	case KeyEvent:
		return e.Key != KeyEscape
	case PointerEvent:
		return !(e.Source == PointerMouse && e.Down)
	default:
		return false
	}
}

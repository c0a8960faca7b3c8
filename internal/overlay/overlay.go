// Package overlay glues native-style dialog and popover surfaces to the
// dismissal core. Every surface a Stack shows is backed by a close watcher:
// dismissal gestures, programmatic closes and the surface's own close
// button all travel the same path.
package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/closewatch/closewatch/internal/closewatch"
	"github.com/closewatch/closewatch/internal/logging"
)

// Kind distinguishes surface flavors; it only affects presentation.
type Kind string

const (
	// KindDialog is a modal surface with a double border.
	KindDialog Kind = "dialog"
	// KindPopover is a light surface with a rounded border.
	KindPopover Kind = "popover"
)

// Surface is one visible overlay in a window's stack.
type Surface interface {
	Name() string
	Kind() Kind
	Title() string
	Visible() bool
	View(width int) string
	// Close hides the surface through its watcher without consulting the
	// veto; the close callback still fires.
	Close()
	// RequestClose runs the full dismissal protocol, veto included.
	RequestClose() bool

	watcherHandle() *closewatch.CloseWatcher
}

// Stack keeps one window's overlay surfaces in visual order and routes
// their lifecycle through close watchers.
type Stack struct {
	reg      *closewatch.Registry
	window   closewatch.Window
	log      logging.Logger
	surfaces []Surface
}

// NewStack creates the surface stack for one window. A nil logger falls
// back to the global one.
func NewStack(reg *closewatch.Registry, window closewatch.Window, log logging.Logger) *Stack {
	if log == nil {
		log = logging.GetGlobal()
	}
	return &Stack{reg: reg, window: window, log: log}
}

// ShowDialog registers and displays a modal dialog.
func (s *Stack) ShowDialog(opts DialogOptions) (*Dialog, error) {
	d := &Dialog{core: core{
		kind:      KindDialog,
		title:     opts.Title,
		body:      opts.Body,
		veto:      opts.Veto,
		onDismiss: opts.OnDismiss,
	}}
	if err := s.push(&d.core, d, opts.Name); err != nil {
		return nil, err
	}
	return d, nil
}

// ShowPopover registers and displays a popover.
func (s *Stack) ShowPopover(opts PopoverOptions) (*Popover, error) {
	p := &Popover{core: core{
		kind:      KindPopover,
		title:     opts.Title,
		body:      opts.Body,
		onDismiss: opts.OnDismiss,
	}}
	if err := s.push(&p.core, p, opts.Name); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Stack) push(c *core, owner Surface, name string) error {
	w, err := closewatch.New(s.reg, s.window, closewatch.Options{Name: name})
	if err != nil {
		return err
	}
	c.stack = s
	c.owner = owner
	c.watcher = w
	c.name = w.Name()
	c.visible = true

	w.OnCancel(func(ev *closewatch.CancelEvent) {
		if c.veto != nil && c.veto() {
			ev.PreventDefault()
		}
	})
	w.OnClose(func() {
		c.visible = false
		s.remove(owner)
		if c.onDismiss != nil {
			c.onDismiss()
		}
	})

	s.surfaces = append(s.surfaces, owner)

	// Each surface the user opens is a fresh dismissal opportunity, so the
	// activation gate re-arms after every registration.
	s.reg.ManagerFor(s.window).RearmActivationGate()

	s.log.Debug("surface shown", "kind", string(c.kind), "name", c.name)
	return nil
}

func (s *Stack) remove(target Surface) {
	for i, sf := range s.surfaces {
		if sf == target {
			s.surfaces = append(s.surfaces[:i], s.surfaces[i+1:]...)
			return
		}
	}
}

// Surfaces returns the visible surfaces, bottom first.
func (s *Stack) Surfaces() []Surface {
	return append([]Surface(nil), s.surfaces...)
}

// Top returns the topmost surface, or nil when nothing is shown.
func (s *Stack) Top() Surface {
	if len(s.surfaces) == 0 {
		return nil
	}
	return s.surfaces[len(s.surfaces)-1]
}

// Len returns the number of visible surfaces.
func (s *Stack) Len() int {
	return len(s.surfaces)
}

// View renders the visible surfaces bottom to top.
func (s *Stack) View(width int) string {
	if len(s.surfaces) == 0 {
		return ""
	}
	views := make([]string, 0, len(s.surfaces))
	for _, sf := range s.surfaces {
		views = append(views, sf.View(width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

// Clear destroys every surface without firing dismiss callbacks; used when
// the hosting window goes away.
func (s *Stack) Clear() {
	for _, sf := range s.surfaces {
		sf.watcherHandle().Destroy()
	}
	s.surfaces = nil
}

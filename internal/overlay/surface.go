package overlay

import "github.com/closewatch/closewatch/internal/closewatch"

// core carries the watcher glue shared by dialogs and popovers.
type core struct {
	stack     *Stack
	owner     Surface
	watcher   *closewatch.CloseWatcher
	name      string
	kind      Kind
	title     string
	body      string
	veto      func() bool
	onDismiss func()
	visible   bool
}

// Name returns the watcher name assigned at registration.
func (c *core) Name() string { return c.name }

// Kind returns the surface flavor.
func (c *core) Kind() Kind { return c.kind }

// Title returns the surface title.
func (c *core) Title() string { return c.title }

// Visible reports whether the surface is still shown.
func (c *core) Visible() bool { return c.visible }

// SetBody replaces the rendered body, e.g. to track a live text input.
func (c *core) SetBody(body string) { c.body = body }

// Close hides the surface through its watcher.
func (c *core) Close() { c.watcher.Close() }

// RequestClose runs the full dismissal protocol, veto included.
func (c *core) RequestClose() bool { return c.watcher.RequestClose() }

func (c *core) watcherHandle() *closewatch.CloseWatcher { return c.watcher }

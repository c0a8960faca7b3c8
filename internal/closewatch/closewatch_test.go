package closewatch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// testWindow is a comparable Window with controllable liveness, shared by
// the tests in this package.
type testWindow struct {
	name string
	dead bool
}

func newTestWindow(name string) *testWindow {
	return &testWindow{name: name}
}

func (w *testWindow) Live() bool     { return !w.dead }
func (w *testWindow) String() string { return w.name }

// plainWindow has no Stringer, so labels fall back to the pointer form.
type plainWindow struct{}

func (*plainWindow) Live() bool { return true }

// captureRecorder keeps recorded ops as "op/watcher/detail" lines.
type captureRecorder struct {
	events []string
}

func (c *captureRecorder) Record(op Op, window, watcher, detail string) {
	c.events = append(c.events, fmt.Sprintf("%s/%s/%s", op, watcher, detail))
}

func TestWindowLabel(t *testing.T) {
	t.Run("UsesStringerWhenAvailable", func(t *testing.T) {
		require.Equal(t, "main", windowLabel(newTestWindow("main")))
	})

	t.Run("FallsBackToPointerForm", func(t *testing.T) {
		w := &plainWindow{}
		require.Equal(t, fmt.Sprintf("%p", w), windowLabel(w))
	})
}

package journal

import (
	"github.com/closewatch/closewatch/internal/closewatch"
	"github.com/closewatch/closewatch/internal/logging"
)

// Recorder forwards core lifecycle events to a Store. It satisfies
// closewatch.Recorder so a registry can be journaled without the core
// knowing about persistence.
type Recorder struct {
	store Store
	log   logging.Logger
}

// NewRecorder wraps store so lifecycle events land in the journal. A nil
// logger falls back to the global one.
func NewRecorder(store Store, log logging.Logger) *Recorder {
	if log == nil {
		log = logging.GetGlobal()
	}
	return &Recorder{store: store, log: log}
}

// Record appends one event to the journal. Append failures are logged and
// swallowed; a broken journal must never interrupt dismissal dispatch.
func (r *Recorder) Record(op closewatch.Op, window, watcher, detail string) {
	if _, err := r.store.Append(string(op), window, watcher, detail); err != nil {
		r.log.Warn("journal append failed", "event", string(op), "error", err.Error())
	}
}

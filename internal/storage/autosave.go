package storage

import (
	"sync"
	"time"

	"careerpro/internal/errors"
	"careerpro/internal/resume"
)

// Autosaver coalesces bursts of document changes into a single write.
// Each Notify arms (or re-arms) a timer; when the debounce window passes
// with no further change, the latest document is written. The contract is
// always "write the latest state", never an intermediate one.
type Autosaver struct {
	mu      sync.Mutex
	store   Store
	window  time.Duration
	logger  *errors.Logger
	timer   *time.Timer
	latest  *resume.Document
	closed  bool
	writeWG sync.WaitGroup

	// onSave, when set, observes each completed write. Used by metrics and
	// the TUI status line.
	onSave func(time.Time)
}

// NewAutosaver creates an autosaver with the given debounce window.
// A zero window falls back to one second.
func NewAutosaver(store Store, window time.Duration, logger *errors.Logger) *Autosaver {
	if window <= 0 {
		window = time.Second
	}
	return &Autosaver{store: store, window: window, logger: logger}
}

// OnSave registers an observer for completed writes.
func (a *Autosaver) OnSave(fn func(time.Time)) {
	a.mu.Lock()
	a.onSave = fn
	a.mu.Unlock()
}

// Notify records the latest document state and schedules a write after the
// debounce window. Superseding calls restart the window. Fire-and-forget:
// the caller never waits for the write.
func (a *Autosaver) Notify(doc *resume.Document) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.latest = doc
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.window, a.flush)
}

// Flush writes any pending state immediately.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()
	a.flush()
}

// Close flushes pending state and stops the autosaver.
func (a *Autosaver) Close() {
	a.Flush()
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
	a.writeWG.Wait()
}

func (a *Autosaver) flush() {
	a.mu.Lock()
	doc := a.latest
	a.latest = nil
	onSave := a.onSave
	a.mu.Unlock()

	if doc == nil {
		return
	}

	a.writeWG.Add(1)
	defer a.writeWG.Done()

	if err := a.store.Save(doc); err != nil {
		if a.logger != nil {
			a.logger.LogError(err, "Autosave failed; document kept in memory")
		}
		return
	}
	if a.logger != nil {
		a.logger.Debug("Autosave completed", "path", a.store.Path())
	}
	if onSave != nil {
		onSave(time.Now())
	}
}

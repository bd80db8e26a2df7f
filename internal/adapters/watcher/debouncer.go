package watcher

import (
	"slices"
	"sync"
	"time"
	"unique"
)

// Debouncer coalesces rapid file system events into batched callbacks.
// Callbacks never overlap.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	stopped  bool
	window   time.Duration
	callback func(paths []string)

	// busy is held for the whole of a callback.
	busy chan struct{}
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
		busy:     make(chan struct{}, 1),
	}
}

// Add records a changed path and restarts the window.
// It does nothing after Stop.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending[unique.Make(path)] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.busy <- struct{}{}
	defer func() { <-d.busy }()

	paths, ok := d.drain()
	if ok && len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}

// Flush runs the callback with all pending paths immediately.
// It blocks until that callback, and any callback already running, returns.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	d.fire()
}

// Stop cancels the pending window and discards its paths. It waits for a
// callback that is already running. It must not be called from the callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = make(map[unique.Handle[string]]struct{})
	d.mu.Unlock()

	d.busy <- struct{}{}
	<-d.busy
}

// drain returns the pending paths in sorted order and resets the set.
// It reports false once the debouncer is stopped.
func (d *Debouncer) drain() ([]string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return nil, false
	}

	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}
	slices.Sort(paths)

	d.pending = make(map[unique.Handle[string]]struct{})
	d.timer = nil
	return paths, true
}

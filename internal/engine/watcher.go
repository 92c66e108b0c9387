package engine

import (
	"context"
	"sync"
	"time"
)

// Watcher turns DOM-mutation notifications into debounced re-detection
// runs. It lives outside the pure classification core: the orchestrator
// wires it to whatever mutation source the host provides, and the core
// stays callable without a live observer.
//
// A notification during the quiet window restarts the window; a run
// triggered while a previous run is still in flight cancels it, since a
// re-detection wholesale replaces earlier results.
type Watcher struct {
	run      func(context.Context)
	timer    *time.Timer
	cancel   context.CancelFunc
	mu       sync.Mutex
	debounce time.Duration
	closed   bool
}

// NewWatcher creates a watcher invoking run after each debounced burst of
// notifications.
func NewWatcher(debounce time.Duration, run func(context.Context)) *Watcher {
	return &Watcher{debounce: debounce, run: run}
}

// Notify records one observed DOM mutation. The re-detection run fires once
// the debounce window elapses without further notifications.
func (w *Watcher) Notify() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	if w.cancel != nil {
		w.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.mu.Unlock()

	w.run(ctx)
}

// Close stops the watcher and cancels any in-flight run.
func (w *Watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	if w.cancel != nil {
		w.cancel()
	}
}

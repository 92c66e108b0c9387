package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWatcherCoalescesBursts(t *testing.T) {
	var runs atomic.Int32
	w := NewWatcher(30*time.Millisecond, func(context.Context) {
		runs.Add(1)
	})
	defer w.Close()

	for i := 0; i < 10; i++ {
		w.Notify()
		time.Sleep(2 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return runs.Load() == 1
	}, time.Second, 10*time.Millisecond)

	// No further notifications, no further runs.
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestWatcherRunsAgainAfterQuietWindow(t *testing.T) {
	var runs atomic.Int32
	w := NewWatcher(10*time.Millisecond, func(context.Context) {
		runs.Add(1)
	})
	defer w.Close()

	w.Notify()
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	w.Notify()
	assert.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestWatcherCancelsSupersededRun(t *testing.T) {
	started := make(chan context.Context, 2)
	release := make(chan struct{})
	w := NewWatcher(5*time.Millisecond, func(ctx context.Context) {
		started <- ctx
		<-release
	})
	defer w.Close()

	w.Notify()
	first := <-started

	w.Notify()
	second := <-started
	close(release)

	select {
	case <-first.Done():
	case <-time.After(time.Second):
		t.Fatal("superseded run's context was not cancelled")
	}
	select {
	case <-second.Done():
		t.Fatal("newest run's context must stay live")
	default:
	}
}

func TestWatcherCloseStopsPendingRun(t *testing.T) {
	var runs atomic.Int32
	w := NewWatcher(20*time.Millisecond, func(context.Context) {
		runs.Add(1)
	})

	w.Notify()
	w.Close()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, runs.Load())

	// Notifications after Close are ignored.
	w.Notify()
	time.Sleep(40 * time.Millisecond)
	assert.Zero(t, runs.Load())
}

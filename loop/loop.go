package loop

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/glowfield/constant"
	"github.com/lixenwraith/glowfield/core"
)

// Loop is a single goroutine cooperative event loop standing in for a display refresh scheduler
// Frame callbacks and posted tasks all execute on the loop goroutine, strictly sequentially
type Loop struct {
	interval time.Duration
	frames   frameQueue
	tasks    chan func()

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	tickCount atomic.Uint64
}

// New creates a loop ticking at the specified interval, clamped to the supported frame rate range
func New(interval time.Duration) *Loop {
	if interval < constant.MinFrameInterval {
		interval = constant.MinFrameInterval
	}
	if interval > constant.MaxFrameInterval {
		interval = constant.MaxFrameInterval
	}
	return &Loop{
		interval: interval,
		frames:   newFrameQueue(),
		tasks:    make(chan func(), constant.LoopTaskQueueSize),
		stopChan: make(chan struct{}),
	}
}

// Interval returns the effective tick interval
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Start launches the loop goroutine
func (l *Loop) Start() {
	select {
	case <-l.stopChan:
		return
	default:
	}
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(l.run)
	}
}

// Stop halts the loop and waits for the goroutine to exit
// Pending frame callbacks are dropped
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
		if l.running.CompareAndSwap(true, false) {
			l.wg.Wait()
		}
	})
}

// Running reports whether the loop goroutine is active
func (l *Loop) Running() bool {
	return l.running.Load()
}

// RequestFrame schedules cb for the next tick and returns a cancel handle
func (l *Loop) RequestFrame(cb func(now time.Time)) uint64 {
	return l.frames.request(cb)
}

// CancelFrame drops a pending frame callback, unknown handles are ignored
func (l *Loop) CancelFrame(id uint64) {
	l.frames.cancel(id)
}

// PendingFrames returns the count of scheduled, not yet executed frame callbacks
func (l *Loop) PendingFrames() int {
	return l.frames.len()
}

// Ticks returns the number of frame ticks processed
func (l *Loop) Ticks() uint64 {
	return l.tickCount.Load()
}

// Post queues fn to run on the loop goroutine between frames
// Returns false if the loop has been stopped
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopChan:
		return false
	default:
	}

	select {
	case l.tasks <- fn:
		return true
	case <-l.stopChan:
		return false
	}
}

// Do runs fn on the loop goroutine and waits for completion
// Runs inline when the loop is not running; must not be called from a loop callback
func (l *Loop) Do(fn func()) {
	if !l.running.Load() {
		fn()
		return
	}

	done := make(chan struct{})
	if !l.Post(func() {
		defer close(done)
		fn()
	}) {
		fn()
		return
	}

	select {
	case <-done:
	case <-l.stopChan:
	}
}

// run is the loop body
func (l *Loop) run() {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return

		case fn := <-l.tasks:
			fn()

		case now := <-ticker.C:
			// Tasks posted before this tick run first so resizes apply to the upcoming frame
			l.drainTasks()
			l.tickCount.Add(1)
			l.frames.run(now)
		}
	}
}

// drainTasks runs queued tasks without blocking
func (l *Loop) drainTasks() {
	for {
		select {
		case fn := <-l.tasks:
			fn()
		default:
			return
		}
	}
}

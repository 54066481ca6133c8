package loop

import "time"

// Manual is a frame scheduler advanced explicitly by the caller
// Used by headless recording and tests where frames must be deterministic
type Manual struct {
	frames frameQueue
	now    time.Time
	step   time.Duration
	ticks  uint64
}

// NewManual creates a scheduler whose clock advances by step per Advance call
func NewManual(start time.Time, step time.Duration) *Manual {
	return &Manual{
		frames: newFrameQueue(),
		now:    start,
		step:   step,
	}
}

func (m *Manual) RequestFrame(cb func(now time.Time)) uint64 {
	return m.frames.request(cb)
}

func (m *Manual) CancelFrame(id uint64) {
	m.frames.cancel(id)
}

// PendingFrames returns the count of scheduled frame callbacks
func (m *Manual) PendingFrames() int {
	return m.frames.len()
}

// Advance moves the clock one step and runs the pending batch, returns callbacks executed
func (m *Manual) Advance() int {
	m.now = m.now.Add(m.step)
	m.ticks++
	return m.frames.run(m.now)
}

// Now returns the current manual clock
func (m *Manual) Now() time.Time {
	return m.now
}

// Ticks returns the number of Advance calls
func (m *Manual) Ticks() uint64 {
	return m.ticks
}

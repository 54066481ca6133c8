package field

import (
	"time"

	"github.com/lixenwraith/glowfield/render"
)

// Presenter displays a finished frame, the drawing context obtained from a Host
type Presenter interface {
	Present(frame *render.Raster, stats FrameStats)
}

// Host is the environment a Simulator attaches to
type Host interface {
	// Viewport returns the current logical dimensions
	Viewport() Viewport

	// Context returns the drawing context, false if the surface is unavailable
	Context() (Presenter, bool)

	// OnResize registers a listener invoked on the scheduler goroutine after each resize
	// The returned func detaches it
	OnResize(fn func(Viewport)) (detach func())
}

// Scheduler is the display refresh primitive, callbacks run once on the next frame
type Scheduler interface {
	RequestFrame(cb func(now time.Time)) uint64
	CancelFrame(id uint64)
}

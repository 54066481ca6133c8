// Package snapshot runs the particle field without a terminal and encodes frames as PNG or GIF
package snapshot

import (
	"github.com/lixenwraith/glowfield/field"
	"github.com/lixenwraith/glowfield/render"
)

// FrameSink receives every presented frame, the raster is reused by the next frame
type FrameSink func(frame *render.Raster, stats field.FrameStats)

// Host is a fixed-size offscreen surface implementing field.Host
// Resize events only happen through Resize; all calls are expected on one goroutine
type Host struct {
	vp        field.Viewport
	sink      FrameSink
	listeners map[uint64]func(field.Viewport)
	nextID    uint64
	closed    bool

	frames int
	last   field.FrameStats
}

// NewHost creates a host of the given logical size, sink may be nil
func NewHost(vp field.Viewport, sink FrameSink) *Host {
	return &Host{
		vp:        vp,
		sink:      sink,
		listeners: make(map[uint64]func(field.Viewport)),
	}
}

func (h *Host) Viewport() field.Viewport { return h.vp }

// Context is unavailable once closed or when the viewport is empty
func (h *Host) Context() (field.Presenter, bool) {
	if h.closed || h.vp.Width <= 0 || h.vp.Height <= 0 {
		return nil, false
	}
	return h, true
}

func (h *Host) OnResize(fn func(field.Viewport)) func() {
	h.nextID++
	id := h.nextID
	h.listeners[id] = fn
	return func() { delete(h.listeners, id) }
}

// Listeners returns the number of attached resize listeners
func (h *Host) Listeners() int { return len(h.listeners) }

// Resize changes the viewport and notifies listeners synchronously
func (h *Host) Resize(vp field.Viewport) {
	h.vp = vp
	for _, fn := range h.listeners {
		fn(vp)
	}
}

// Close makes the drawing context unavailable to later Start calls
func (h *Host) Close() { h.closed = true }

func (h *Host) Present(frame *render.Raster, stats field.FrameStats) {
	h.frames++
	h.last = stats
	if h.sink != nil {
		h.sink(frame, stats)
	}
}

// Frames returns the number of presented frames
func (h *Host) Frames() int { return h.frames }

// Last returns the stats of the most recent frame
func (h *Host) Last() field.FrameStats { return h.last }

package status

import (
	"sync/atomic"

	"github.com/lixenwraith/glowfield/field"
)

// Metric keys written by FrameRecorder
const (
	KeyFrames     = "field.frames"
	KeyParticles  = "field.particles"
	KeyLinks      = "field.links"
	KeyRespawns   = "field.respawns"
	KeyGeneration = "field.generation"
	KeyResizes    = "field.resizes"
	KeyEnergy     = "field.energy"
)

// FrameRecorder publishes simulator frame stats into a registry
type FrameRecorder struct {
	frames     *atomic.Int64
	particles  *atomic.Int64
	links      *atomic.Int64
	respawns   *atomic.Int64
	generation *atomic.Int64
	resizes    *atomic.Int64
	energy     *AtomicFloat
}

// NewFrameRecorder caches the metric pointers
func NewFrameRecorder(r *Registry) *FrameRecorder {
	return &FrameRecorder{
		frames:     r.Ints.Get(KeyFrames),
		particles:  r.Ints.Get(KeyParticles),
		links:      r.Ints.Get(KeyLinks),
		respawns:   r.Ints.Get(KeyRespawns),
		generation: r.Ints.Get(KeyGeneration),
		resizes:    r.Ints.Get(KeyResizes),
		energy:     r.Floats.Get(KeyEnergy),
	}
}

// Observe is a field frame observer
func (f *FrameRecorder) Observe(stats field.FrameStats) {
	f.frames.Store(int64(stats.Frame))
	f.particles.Store(int64(stats.Particles))
	f.links.Store(int64(stats.Links))
	f.respawns.Add(int64(stats.Respawns))
	f.generation.Store(int64(stats.Generation))
	f.energy.Set(stats.Energy)
}

// OnResize counts viewport changes, usable as a host resize listener
func (f *FrameRecorder) OnResize(field.Viewport) {
	f.resizes.Add(1)
}

package field

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/glowfield/render"
	"github.com/lixenwraith/glowfield/vmath"
)

// Simulator owns a field, its drawing surface and the frame loop driving both
// Not safe for concurrent use: every method runs on the scheduler goroutine
type Simulator struct {
	sched    Scheduler
	field    *Field
	renderer *Renderer
	raster   *render.Raster
	links    []Link

	presenter Presenter
	detach    func()

	frameID uint64
	pending bool
	running bool
	frames  uint64

	observers []func(FrameStats)
	logger    *slog.Logger
}

// Option configures a Simulator
type Option func(*Simulator)

// WithFrameObserver registers fn to receive stats after every presented frame
func WithFrameObserver(fn func(FrameStats)) Option {
	return func(s *Simulator) {
		s.observers = append(s.observers, fn)
	}
}

// WithLogger sets the lifecycle logger, defaults to slog.Default()
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		s.logger = l
	}
}

// NewSimulator creates an idle simulator, nothing runs until Start
func NewSimulator(params Params, sched Scheduler, rng *vmath.FastRand, opts ...Option) *Simulator {
	f := NewField(params, rng)
	s := &Simulator{
		sched:    sched,
		field:    f,
		renderer: NewRenderer(f.Params()),
		raster:   render.NewRaster(0, 0),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start attaches to host: sizes the surface and population, listens for resizes and requests the first frame
// Silent no-op if the host has no drawing context or the simulator is already running
func (s *Simulator) Start(host Host) {
	if s.running {
		return
	}

	presenter, ok := host.Context()
	if !ok || presenter == nil {
		s.logger.Debug("drawing context unavailable, particle field inactive")
		return
	}

	s.presenter = presenter
	s.running = true
	s.applyViewport(host.Viewport())
	s.detach = host.OnResize(s.Resize)
	s.schedule()

	s.logger.Info("particle field started",
		"width", s.field.Viewport().Width,
		"height", s.field.Viewport().Height,
		"particles", s.field.Len(),
	)
}

// Resize resizes the surface and regenerates the whole population, no continuity is kept
// Ignored while stopped
func (s *Simulator) Resize(vp Viewport) {
	if !s.running {
		return
	}
	s.applyViewport(vp)
	s.logger.Debug("particle field resized",
		"width", vp.Width,
		"height", vp.Height,
		"particles", s.field.Len(),
		"generation", s.field.Generation(),
	)
}

// Stop cancels the pending frame and detaches the resize listener
// No frame work happens after Stop returns; idempotent
func (s *Simulator) Stop() {
	if !s.running {
		return
	}
	s.running = false

	if s.pending {
		s.sched.CancelFrame(s.frameID)
		s.pending = false
	}
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
	s.presenter = nil

	s.logger.Info("particle field stopped", "frames", s.frames)
}

// Running reports whether the frame loop is active
func (s *Simulator) Running() bool { return s.running }

// Frames returns the number of frames rendered
func (s *Simulator) Frames() uint64 { return s.frames }

// Field exposes the simulated population
func (s *Simulator) Field() *Field { return s.field }

// Raster exposes the drawing surface
func (s *Simulator) Raster() *render.Raster { return s.raster }

// applyViewport resizes the drawing surface and regenerates the population
func (s *Simulator) applyViewport(vp Viewport) {
	w, h := vp.RasterSize()
	s.raster.Resize(w, h)
	s.field.Reset(vp)
}

// schedule requests the next frame
func (s *Simulator) schedule() {
	s.frameID = s.sched.RequestFrame(s.onFrame)
	s.pending = true
}

// onFrame runs one update, render, present cycle then schedules the next
func (s *Simulator) onFrame(now time.Time) {
	s.pending = false
	if !s.running {
		return
	}

	respawned := s.field.Step()
	s.links = s.field.Links(s.links)
	stats := s.renderer.Render(s.field, s.links, s.raster)

	s.frames++
	stats.At = now
	stats.Frame = s.frames
	stats.Respawns = respawned

	s.presenter.Present(s.raster, stats)
	for _, fn := range s.observers {
		fn(stats)
	}

	// An observer may have stopped the simulator
	if s.running {
		s.schedule()
	}
}

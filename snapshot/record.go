package snapshot

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/glowfield/constant"
	"github.com/lixenwraith/glowfield/field"
	"github.com/lixenwraith/glowfield/loop"
	"github.com/lixenwraith/glowfield/vmath"
)

var (
	// ErrEmptyViewport is returned when the recording surface has no area
	ErrEmptyViewport = errors.New("viewport has no area")
	// ErrInvalidFrames is returned for a non-positive frame count
	ErrInvalidFrames = errors.New("frame count must be positive")
)

// Options control a headless recording
type Options struct {
	Viewport field.Viewport
	Frames   int
	Seed     uint64
	Interval time.Duration // simulated time per frame, defaults to the frame update interval
	Logger   *slog.Logger
}

// Summary describes a finished recording
type Summary struct {
	Frames     int
	Particles  int
	Respawns   int
	PeakLinks  int
	MeanEnergy float64
	Simulated  time.Duration
}

// Record drives a simulator over a manual clock for opts.Frames frames
// Deterministic for a given seed, viewport and params
func Record(params field.Params, opts Options, sink FrameSink) (Summary, error) {
	if opts.Frames <= 0 {
		return Summary{}, fmt.Errorf("record %d frames: %w", opts.Frames, ErrInvalidFrames)
	}
	if opts.Interval <= 0 {
		opts.Interval = constant.FrameUpdateInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var sum Summary
	var energy float64
	collect := func(stats field.FrameStats) {
		sum.Particles = stats.Particles
		sum.PeakLinks = max(sum.PeakLinks, stats.Links)
		energy += stats.Energy
	}

	start := time.Unix(0, 0)
	sched := loop.NewManual(start, opts.Interval)
	sim := field.NewSimulator(params, sched, vmath.NewFastRand(opts.Seed),
		field.WithLogger(logger),
		field.WithFrameObserver(collect),
	)

	host := NewHost(opts.Viewport, sink)
	sim.Start(host)
	if !sim.Running() {
		return Summary{}, fmt.Errorf("record %dx%d: %w", opts.Viewport.Width, opts.Viewport.Height, ErrEmptyViewport)
	}
	defer sim.Stop()

	for host.Frames() < opts.Frames {
		if sched.Advance() == 0 {
			break
		}
	}

	sum.Frames = host.Frames()
	sum.Respawns = int(sim.Field().Respawns())
	if sum.Frames > 0 {
		sum.MeanEnergy = energy / float64(sum.Frames)
	}
	sum.Simulated = sched.Now().Sub(start)

	logger.Debug("recording finished",
		"frames", sum.Frames,
		"particles", sum.Particles,
		"respawns", sum.Respawns,
	)
	return sum, nil
}

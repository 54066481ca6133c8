// Package audio provides an optional ambient pad driven by particle field link energy
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/glowfield/constant"
	"github.com/lixenwraith/glowfield/field"
	"github.com/lixenwraith/glowfield/status"
)

// Config tunes the ambient pad
type Config struct {
	SampleRate int
	Buffer     time.Duration
	BaseFreq   float64
	Detune     float64
	MaxGain    float64
	Smoothing  float64
	Volume     float64 // master volume in [0, 1]
}

// DefaultConfig returns the stock pad
func DefaultConfig() Config {
	return Config{
		SampleRate: constant.AudioSampleRate,
		Buffer:     constant.AudioBufferDuration,
		BaseFreq:   constant.AmbientBaseFreq,
		Detune:     constant.AmbientDetune,
		MaxGain:    constant.AmbientMaxGain,
		Smoothing:  constant.AmbientSmoothing,
		Volume:     constant.AmbientVolume,
	}
}

// Ambient plays a drone whose loudness tracks the field's link energy
type Ambient struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	level       status.AtomicFloat
	ctrl        *beep.Ctrl
	mixer       *beep.Mixer
	initialized bool
}

// NewAmbient builds the pad, nothing plays until Start
func NewAmbient(cfg Config) *Ambient {
	a := &Ambient{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
	d := newDrone(a.rate, cfg.BaseFreq, cfg.Detune, cfg.MaxGain, cfg.Smoothing, &a.level)
	a.ctrl = &beep.Ctrl{Streamer: newVolume(d, cfg.Volume), Paused: false}
	return a
}

// SetLevel sets the target loudness in [0, 1], safe from any goroutine
func (a *Ambient) SetLevel(v float64) {
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	a.level.Set(v)
}

// Level returns the current target loudness
func (a *Ambient) Level() float64 {
	return a.level.Get()
}

// Observe is a frame observer feeding link energy into the pad
func (a *Ambient) Observe(stats field.FrameStats) {
	a.SetLevel(stats.Energy)
}

// Streamer returns the pad output, for mixing or offline rendering
func (a *Ambient) Streamer() beep.Streamer { return a.ctrl }

// Start initializes the speaker and begins playback
func (a *Ambient) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}

	if err := speakerInit(a.rate, a.rate.N(a.cfg.Buffer)); err != nil {
		return err
	}

	speakerLock()
	a.ctrl.Paused = false
	speakerUnlock()

	a.mixer.Add(a.ctrl)
	speakerPlay(a.mixer)
	a.initialized = true
	return nil
}

// Stop silences the pad and clears the mixer
func (a *Ambient) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return
	}

	speakerLock()
	a.ctrl.Paused = true
	a.mixer.Clear()
	speakerUnlock()

	a.initialized = false
}

// Playing reports whether Start succeeded and Stop has not been called
func (a *Ambient) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.initialized
}

// newVolume wraps s with a linear master volume
// math.Log2(0) is -Inf, so zero volume is handled as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(min(vol, 1)), Silent: false}
}

package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/glowfield/status"
)

// drone is an endless two-voice sine pad whose gain follows a shared level
type drone struct {
	rate      beep.SampleRate
	freqs     [2]float64
	phases    [2]float64
	level     *status.AtomicFloat // target loudness in [0, 1]
	gain      float64
	maxGain   float64
	smoothing float64
}

func newDrone(rate beep.SampleRate, base, detune, maxGain, smoothing float64, level *status.AtomicFloat) *drone {
	return &drone{
		rate:      rate,
		freqs:     [2]float64{base, base * detune},
		level:     level,
		maxGain:   maxGain,
		smoothing: smoothing,
	}
}

func (d *drone) Stream(samples [][2]float64) (n int, ok bool) {
	target := d.level.Get() * d.maxGain

	for i := range samples {
		// One-pole smoothing avoids clicks when the level jumps between frames
		d.gain += (target - d.gain) * d.smoothing

		val := 0.5 * d.gain * (math.Sin(2*math.Pi*d.phases[0]) + math.Sin(2*math.Pi*d.phases[1]))
		samples[i][0] = val
		samples[i][1] = val

		for v := range d.phases {
			d.phases[v] += d.freqs[v] / float64(d.rate)
			d.phases[v] -= math.Floor(d.phases[v])
		}
	}
	return len(samples), true
}

func (d *drone) Err() error { return nil }

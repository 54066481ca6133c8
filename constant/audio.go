package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Ambient pad
const (
	// AmbientBaseFreq is the root tone in Hz
	AmbientBaseFreq = 110.0

	// AmbientDetune is the second voice ratio, a slight detune produces slow beating
	AmbientDetune = 1.5036

	// AmbientMaxGain is the output gain at full link energy
	AmbientMaxGain = 0.12

	// AmbientSmoothing is the per-sample approach factor toward the target gain
	AmbientSmoothing = 0.0005

	// AmbientVolume is the default master volume
	AmbientVolume = 0.6
)

//go:build noaudio

package audio

import (
	"errors"
	"sync"

	"github.com/gopxl/beep"
)

// ErrNoAudio is returned by Start in builds without a sound backend
var ErrNoAudio = errors.New("audio: built with noaudio tag")

var speakerMu sync.Mutex

var (
	speakerInit   = func(beep.SampleRate, int) error { return ErrNoAudio }
	speakerPlay   = func(...beep.Streamer) {}
	speakerLock   = speakerMu.Lock
	speakerUnlock = speakerMu.Unlock
)

//go:build !noaudio

package audio

import "github.com/gopxl/beep/speaker"

// Speaker hooks, replaced in tests to avoid opening an audio device
var (
	speakerInit   = speaker.Init
	speakerPlay   = speaker.Play
	speakerLock   = speaker.Lock
	speakerUnlock = speaker.Unlock
)

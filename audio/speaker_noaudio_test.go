//go:build noaudio

package audio

import (
	"errors"
	"testing"
)

func TestStartWithoutBackend(t *testing.T) {
	a := NewAmbient(DefaultConfig())
	if err := a.Start(); !errors.Is(err, ErrNoAudio) {
		t.Fatalf("Start err = %v, want ErrNoAudio", err)
	}
	if a.Playing() {
		t.Error("ambient playing without a backend")
	}
	a.Stop()
}

package status

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lixenwraith/glowfield/field"
)

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("zero value = %f", f.Get())
	}
	f.Set(1.5)
	if got := f.Add(0.25); got != 1.75 {
		t.Errorf("Add = %f, want 1.75", got)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(1)
			}
		}()
	}
	wg.Wait()
	if got := f.Get(); got != 8001.75 {
		t.Errorf("concurrent Add = %f, want 8001.75", got)
	}
}

func TestMetricMapStablePointers(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	a := m.Get("a")
	a.Store(3)
	if m.Get("a") != a || m.Get("a").Load() != 3 {
		t.Error("Get returned a different pointer for the same key")
	}
	m.Get("c")
	m.Get("b")

	var keys []string
	m.Range(func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Range order = %v", keys)
	}
}

func TestFrameRecorder(t *testing.T) {
	reg := NewRegistry()
	rec := NewFrameRecorder(reg)

	rec.Observe(field.FrameStats{Frame: 1, Particles: 40, Links: 12, Respawns: 2, Generation: 1, Energy: 0.3})
	rec.Observe(field.FrameStats{Frame: 2, Particles: 40, Links: 10, Respawns: 1, Generation: 1, Energy: 0.25})
	rec.OnResize(field.Viewport{Width: 400, Height: 300})

	tests := []struct {
		key  string
		want int64
	}{
		{KeyFrames, 2},
		{KeyParticles, 40},
		{KeyLinks, 10},
		{KeyRespawns, 3},
		{KeyGeneration, 1},
		{KeyResizes, 1},
	}
	for _, tt := range tests {
		if got := reg.Ints.Get(tt.key).Load(); got != tt.want {
			t.Errorf("%s = %d, want %d", tt.key, got, tt.want)
		}
	}
	if got := reg.Floats.Get(KeyEnergy).Get(); got != 0.25 {
		t.Errorf("energy = %f, want 0.25", got)
	}

	attrs := reg.Attrs()
	if len(attrs) != reg.TotalCount() || len(attrs) != 7 {
		t.Fatalf("Attrs len = %d, TotalCount = %d", len(attrs), reg.TotalCount())
	}
	if a, ok := attrs[len(attrs)-1].(slog.Attr); !ok || a.Key != KeyEnergy {
		t.Errorf("last attr = %v, want %s", attrs[len(attrs)-1], KeyEnergy)
	}
}

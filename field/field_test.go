package field

import (
	"math"
	"testing"

	"github.com/lixenwraith/glowfield/vmath"
)

func newTestField(seed uint64, vp Viewport) *Field {
	f := NewField(DefaultParams(), vmath.NewFastRand(seed))
	f.Reset(vp)
	return f
}

func TestFieldPopulationConstant(t *testing.T) {
	f := newTestField(1, Viewport{Width: 800, Height: 600})
	want := f.Len()
	if want != 40 {
		t.Fatalf("initial population = %d, want 40", want)
	}

	totalRespawns := 0
	for frame := 0; frame < 2000; frame++ {
		totalRespawns += f.Step()
		if f.Len() != want {
			t.Fatalf("frame %d: population %d, want %d", frame, f.Len(), want)
		}
	}

	// 2000 frames exceeds the max lifespan, every particle turned over at least once
	if totalRespawns < want {
		t.Errorf("respawns = %d, expected at least %d", totalRespawns, want)
	}
	if f.Respawns() != uint64(totalRespawns) {
		t.Errorf("Respawns() = %d, want %d", f.Respawns(), totalRespawns)
	}
}

func TestFieldStaysInBounds(t *testing.T) {
	vp := Viewport{Width: 500, Height: 400}
	f := newTestField(2, vp)

	for frame := 0; frame < 3000; frame++ {
		f.Step()
		for i, p := range f.Particles() {
			tolX := math.Abs(p.Vel.X) + 1e-9
			tolY := math.Abs(p.Vel.Y) + 1e-9
			if p.Pos.X < -tolX || p.Pos.X > float64(vp.Width)+tolX {
				t.Fatalf("frame %d particle %d x=%f outside [0,%d] ± %f", frame, i, p.Pos.X, vp.Width, tolX)
			}
			if p.Pos.Y < -tolY || p.Pos.Y > float64(vp.Height)+tolY {
				t.Fatalf("frame %d particle %d y=%f outside [0,%d] ± %f", frame, i, p.Pos.Y, vp.Height, tolY)
			}
		}
	}
}

func TestFieldAgeWithinLifespan(t *testing.T) {
	f := newTestField(3, Viewport{Width: 1024, Height: 768})

	for frame := 0; frame < 1500; frame++ {
		f.Step()
		for i, p := range f.Particles() {
			if p.Age < 0 || p.Age > p.Lifespan {
				t.Fatalf("frame %d particle %d age %d outside [0,%d]", frame, i, p.Age, p.Lifespan)
			}
			if p.Age >= p.Lifespan {
				t.Fatalf("frame %d particle %d survived to its lifespan without respawn", frame, i)
			}
		}
	}
}

func TestFieldRespawnResetsAge(t *testing.T) {
	f := newTestField(4, Viewport{Width: 800, Height: 600})

	p := &f.particles[0]
	p.Lifespan = p.Age + 1

	if n := f.Step(); n < 1 {
		t.Fatalf("Step reported %d respawns, want at least 1", n)
	}
	if f.particles[0].Age != 0 {
		t.Errorf("respawned particle age = %d, want 0", f.particles[0].Age)
	}
	if f.particles[0].Lifespan < f.Params().MinLifespan {
		t.Errorf("respawned lifespan %d below minimum", f.particles[0].Lifespan)
	}
}

func TestFieldResizeRegenerates(t *testing.T) {
	f := newTestField(5, Viewport{Width: 800, Height: 600})
	if f.Len() != 40 {
		t.Fatalf("800x600 population = %d, want 40", f.Len())
	}

	before := make([]Particle, f.Len())
	copy(before, f.Particles())
	gen := f.Generation()

	f.Reset(Viewport{Width: 400, Height: 300})
	if f.Len() != 10 {
		t.Fatalf("400x300 population = %d, want 10", f.Len())
	}
	if f.Generation() != gen+1 {
		t.Errorf("generation = %d, want %d", f.Generation(), gen+1)
	}

	for i, p := range f.Particles() {
		if p == before[i] {
			t.Errorf("particle %d survived resize unchanged", i)
		}
		if p.Pos.X > 400 || p.Pos.Y > 300 {
			t.Errorf("particle %d sampled outside new viewport: %+v", i, p.Pos)
		}
	}
}

func TestLinkAlpha(t *testing.T) {
	const threshold = 120.0
	const maxAlpha = 0.2

	tests := []struct {
		name string
		dist float64
		want float64
	}{
		{"touching", 0, maxAlpha},
		{"half threshold", threshold / 2, maxAlpha / 2},
		{"quarter", threshold / 4, maxAlpha * 0.75},
		{"at threshold", threshold, 0},
		{"beyond", threshold * 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinkAlpha(tt.dist, threshold, maxAlpha); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("LinkAlpha(%f) = %f, want %f", tt.dist, got, tt.want)
			}
		})
	}

	if LinkAlpha(10, 0, maxAlpha) != 0 {
		t.Error("zero threshold must disable links")
	}
}

func TestFieldLinksThreshold(t *testing.T) {
	params := DefaultParams()
	f := NewField(params, vmath.NewFastRand(6))
	f.Reset(Viewport{Width: 800, Height: 600})

	// Place three particles by hand: a-b at exactly the threshold, a-c at half of it
	f.particles = f.particles[:3]
	f.particles[0].Pos = vmath.Vec2{X: 100, Y: 100}
	f.particles[1].Pos = vmath.Vec2{X: 100 + params.LinkDistance, Y: 100}
	f.particles[2].Pos = vmath.Vec2{X: 100, Y: 100 + params.LinkDistance/2}

	links := f.Links(nil)

	var ab, ac, bc bool
	for _, l := range links {
		switch {
		case l.A == 0 && l.B == 1:
			ab = true
		case l.A == 0 && l.B == 2:
			ac = true
			if math.Abs(l.Alpha-params.LinkOpacity/2) > 1e-9 {
				t.Errorf("half threshold alpha = %f, want %f", l.Alpha, params.LinkOpacity/2)
			}
			if math.Abs(l.Dist-params.LinkDistance/2) > 1e-9 {
				t.Errorf("half threshold dist = %f", l.Dist)
			}
		case l.A == 1 && l.B == 2:
			bc = true
		}
		if l.A >= l.B {
			t.Errorf("link not ordered: %d,%d", l.A, l.B)
		}
	}

	if ab {
		t.Error("pair exactly at threshold must not be linked")
	}
	if !ac {
		t.Error("pair at half threshold must be linked")
	}
	if bc {
		t.Error("pair beyond threshold must not be linked")
	}
}

func TestFieldLinksReusesBuffer(t *testing.T) {
	f := newTestField(7, Viewport{Width: 300, Height: 300})
	buf := make([]Link, 0, 1024)

	first := f.Links(buf)
	second := f.Links(first)
	if len(first) != len(second) {
		t.Errorf("link count changed without a step: %d vs %d", len(first), len(second))
	}
	if len(second) > 0 && &second[0] != &buf[:1][0] {
		t.Error("Links did not reuse the provided buffer")
	}
}

func TestFieldLinksCountAllPairs(t *testing.T) {
	f := newTestField(8, Viewport{Width: 800, Height: 600})
	threshold := f.Params().LinkDistance

	want := 0
	ps := f.Particles()
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			if math.Hypot(ps[i].Pos.X-ps[j].Pos.X, ps[i].Pos.Y-ps[j].Pos.Y) < threshold {
				want++
			}
		}
	}

	if got := len(f.Links(nil)); got != want {
		t.Errorf("Links() = %d pairs, brute force = %d", got, want)
	}
}

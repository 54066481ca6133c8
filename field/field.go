package field

import (
	"math"

	"github.com/lixenwraith/glowfield/vmath"
)

// Link is a proximity connection between two particles
type Link struct {
	A, B  int // particle indices, A < B
	Dist  float64
	Alpha float64
}

// LinkAlpha returns the line alpha for two particles dist apart
// Linear fade from maxAlpha at zero distance to 0 at threshold, zero at or beyond it
func LinkAlpha(dist, threshold, maxAlpha float64) float64 {
	if threshold <= 0 || dist >= threshold {
		return 0
	}
	if dist < 0 {
		dist = 0
	}
	return maxAlpha * (1 - dist/threshold)
}

// Field owns the particle population for one viewport
type Field struct {
	params    Params
	rng       *vmath.FastRand
	vp        Viewport
	particles []Particle

	generation uint64
	respawns   uint64
}

// NewField creates an empty field, call Reset to populate it
func NewField(params Params, rng *vmath.FastRand) *Field {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	return &Field{
		params: params,
		rng:    rng,
	}
}

// Reset discards all particles and regenerates the set sized for vp
func (f *Field) Reset(vp Viewport) {
	f.vp = vp
	n := f.params.Policy.Count(vp)

	if cap(f.particles) < n {
		f.particles = make([]Particle, n)
	} else {
		f.particles = f.particles[:n]
	}
	for i := range f.particles {
		f.particles[i] = Spawn(f.rng, vp, f.params.Palette, &f.params)
	}
	f.generation++
}

// Step advances every particle one frame and returns how many were respawned
func (f *Field) Step() int {
	w := float64(f.vp.Width)
	h := float64(f.vp.Height)

	respawned := 0
	for i := range f.particles {
		p := &f.particles[i]
		if p.advance(w, h) {
			*p = Spawn(f.rng, f.vp, f.params.Palette, &f.params)
			respawned++
		}
	}
	f.respawns += uint64(respawned)
	return respawned
}

// Links appends every pair closer than the link distance to dst
// O(n²) over unordered pairs, bounded by the population cap
func (f *Field) Links(dst []Link) []Link {
	dst = dst[:0]
	threshold := f.params.LinkDistance
	if threshold <= 0 {
		return dst
	}
	thresholdSq := threshold * threshold

	for i := 0; i < len(f.particles); i++ {
		a := f.particles[i].Pos
		for j := i + 1; j < len(f.particles); j++ {
			dSq := vmath.DistSq(a, f.particles[j].Pos)
			if dSq >= thresholdSq {
				continue
			}
			d := math.Sqrt(dSq)
			dst = append(dst, Link{
				A:     i,
				B:     j,
				Dist:  d,
				Alpha: LinkAlpha(d, threshold, f.params.LinkOpacity),
			})
		}
	}
	return dst
}

// Particles exposes the live population, callers must not retain it across Reset
func (f *Field) Particles() []Particle { return f.particles }

// Len returns the population size
func (f *Field) Len() int { return len(f.particles) }

// Viewport returns the viewport of the last Reset
func (f *Field) Viewport() Viewport { return f.vp }

// Generation increments on every Reset
func (f *Field) Generation() uint64 { return f.generation }

// Respawns returns the total in-place respawns since creation
func (f *Field) Respawns() uint64 { return f.respawns }

// Params returns the field tuning
func (f *Field) Params() *Params { return &f.params }

// Package field simulates and renders an ambient particle field.
//
// A Field owns a bounded population of drifting particles sized from the
// viewport area. Each frame every particle integrates its constant velocity,
// ages, bounces off the viewport walls and is respawned in place once its
// lifespan elapses, so the population never changes between resizes.
//
// The Renderer composites the field onto a render.Raster with additive
// blending: a soft glow, a core disc and a faint halo per particle, then a
// line between every pair closer than the link distance whose alpha fades
// linearly to zero at that distance.
//
// A Simulator ties both to a Host (viewport, drawing context, resize events)
// and a Scheduler (display refresh callbacks). All methods of Simulator must
// be called from the scheduler's goroutine.
package field

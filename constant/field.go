package constant

// Particle count policy
const (
	// DensityPixels is the logical viewport area allotted to one particle
	DensityPixels = 12000

	// WideParticleCap bounds population on desktop-class viewports
	WideParticleCap = 80

	// MobileParticleCap bounds population on narrow viewports
	MobileParticleCap = 30

	// MinParticles is the lower bound applied after the density division
	MinParticles = 10

	// MobileBreakpoint is the logical width below which a viewport counts as mobile
	MobileBreakpoint = 768
)

// Particle sampling ranges, velocities are logical pixels per frame
const (
	ParticleMaxSpeed = 0.25

	ParticleMinSize = 0.5
	ParticleMaxSize = 2.5

	ParticleMinOpacity = 0.2
	ParticleMaxOpacity = 0.7

	// Lifespans in frames
	ParticleMinLifespan = 200
	ParticleMaxLifespan = 500

	// ParticleFadeDepth is the fraction of base opacity lost by end of life
	ParticleFadeDepth = 0.5
)

// Proximity links
const (
	// LinkDistance is the logical pixel threshold below which two particles are linked
	LinkDistance = 120.0

	// LinkOpacity is the line alpha at zero distance, fading linearly to 0 at LinkDistance
	LinkOpacity = 0.15
)

// DefaultPalette holds the four particle colors (violet, cyan, pink, blue)
var DefaultPalette = [4]string{"#8b5cf6", "#06b6d4", "#ec4899", "#3b82f6"}

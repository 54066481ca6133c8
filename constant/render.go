package constant

// Glow composition, radii in logical pixels
const (
	// GlowBlur is the soft shadow extent beyond a particle's radius
	GlowBlur = 15.0

	// GlowStrength scales the shadow alpha relative to the particle opacity
	GlowStrength = 0.6

	// HaloScale is the halo radius as a multiple of particle size
	HaloScale = 3.0

	// HaloOpacity is the halo alpha as a fraction of particle opacity
	HaloOpacity = 0.1

	// BlendModeName is the compositing mode for particles and links
	BlendModeName = "lighter"
)

// BackgroundColor is the cleared surface color
const BackgroundColor = "#0b0b14"

// Terminal cell geometry in logical pixels, half-block rendering gives 2 raster rows per cell
const (
	CellWidth  = 8
	CellHeight = 16
)

// HUD
const (
	HUDForeground = "#c0c0d0"
	HUDBackground = "#1a1b26"
)

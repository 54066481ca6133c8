package terminal

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glowfield/field"
	"github.com/lixenwraith/glowfield/render"
)

// fpsSmoothing is the EMA weight of the newest frame interval
const fpsSmoothing = 0.1

// minContrast is the luminance contrast ratio below which the HUD foreground is replaced
const minContrast = 3.0

// hud renders a single stats line over the top row
type hud struct {
	fg, bg render.RGB

	last  time.Time
	fps   float64
	stats field.FrameStats
}

func newHUD(fg, bg render.RGB) *hud {
	return &hud{fg: readableOn(fg, bg), bg: bg}
}

// readableOn keeps fg when it stands out against bg, else falls back to black or white
func readableOn(fg, bg render.RGB) render.RGB {
	if contrast(fg, bg) >= minContrast {
		return fg
	}
	// above this background luminance black contrasts better than white
	if bg.Luminance() > 0.179 {
		return render.RGBBlack
	}
	return render.RGBWhite
}

// contrast returns the relative luminance ratio of the lighter color to the darker, in [1, 21]
func contrast(a, b render.RGB) float64 {
	la, lb := a.Luminance()+0.05, b.Luminance()+0.05
	if la < lb {
		la, lb = lb, la
	}
	return la / lb
}

// update folds a frame into the smoothed rate
func (h *hud) update(stats field.FrameStats) {
	if !h.last.IsZero() && stats.At.After(h.last) {
		inst := 1.0 / stats.At.Sub(h.last).Seconds()
		if h.fps == 0 {
			h.fps = inst
		} else {
			h.fps += (inst - h.fps) * fpsSmoothing
		}
	}
	h.last = stats.At
	h.stats = stats
}

// text formats the stats line
func (h *hud) text() string {
	return fmt.Sprintf(" %s particles  %s links  %s fps  energy %s%%  frame %s  gen %s ",
		humanize.Comma(int64(h.stats.Particles)),
		humanize.Comma(int64(h.stats.Links)),
		humanize.FtoaWithDigits(h.fps, 1),
		humanize.FtoaWithDigits(h.stats.Energy*100, 0),
		humanize.Comma(int64(h.stats.Frame)),
		humanize.Comma(int64(h.stats.Generation)),
	)
}

// draw writes the line left-aligned on row 0, truncated to cols
func (h *hud) draw(screen tcell.Screen, cols int, mode ColorMode) {
	style := tcell.StyleDefault.
		Foreground(toTcell(h.fg, mode)).
		Background(toTcell(h.bg, mode))

	x := 0
	for _, r := range h.text() {
		if x >= cols {
			break
		}
		screen.SetContent(x, 0, r, nil, style)
		x++
	}
}

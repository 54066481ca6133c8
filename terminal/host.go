package terminal

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glowfield/constant"
	"github.com/lixenwraith/glowfield/core"
	"github.com/lixenwraith/glowfield/field"
	"github.com/lixenwraith/glowfield/render"
)

// upperHalfBlock shows fg on the top half of a cell and bg on the bottom half
const upperHalfBlock = '▀'

// PostFunc delivers fn to the frame loop goroutine, false if the loop has stopped
type PostFunc func(fn func()) bool

// Host adapts a tcell screen to field.Host and field.Presenter
type Host struct {
	screen tcell.Screen
	post   PostFunc
	mode   ColorMode
	hud    *hud

	mu        sync.Mutex
	cols      int
	rows      int
	listeners map[uint64]func(field.Viewport)
	nextID    uint64
	closed    bool

	finiOnce sync.Once
}

// Option configures a Host
type Option func(*Host)

// WithColorMode forces truecolor or 256-color output, auto by default
func WithColorMode(mode ColorMode) Option {
	return func(h *Host) {
		h.mode = mode
	}
}

// WithHUD enables the stats line on the top row
func WithHUD(fg, bg render.RGB) Option {
	return func(h *Host) {
		h.hud = newHUD(fg, bg)
	}
}

// NewHost wraps an initialized screen
// post may be nil, listeners then run on the event pump goroutine
func NewHost(screen tcell.Screen, post PostFunc, opts ...Option) *Host {
	h := &Host{
		screen:    screen,
		post:      post,
		listeners: make(map[uint64]func(field.Viewport)),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.mode = resolveColorMode(h.mode, screen)
	h.cols, h.rows = screen.Size()
	return h
}

// ColorMode returns the resolved output mode
func (h *Host) ColorMode() ColorMode { return h.mode }

// Viewport returns the logical pixel dimensions of the screen
func (h *Host) Viewport() field.Viewport {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.viewportLocked()
}

func (h *Host) viewportLocked() field.Viewport {
	return field.Viewport{
		Width:      h.cols * constant.CellWidth,
		Height:     h.rows * constant.CellHeight,
		PixelRatio: 1.0 / constant.CellWidth,
	}
}

// Context returns the host as presenter until the screen is finalized
func (h *Host) Context() (field.Presenter, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || h.cols <= 0 || h.rows <= 0 {
		return nil, false
	}
	return h, true
}

// OnResize registers fn, the returned func detaches it
func (h *Host) OnResize(fn func(field.Viewport)) func() {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.listeners[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.listeners, id)
		h.mu.Unlock()
	}
}

// Listeners returns the number of attached resize listeners
func (h *Host) Listeners() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// Present draws the raster as half-block cells, then the HUD, then flushes
func (h *Host) Present(frame *render.Raster, stats field.FrameStats) {
	h.mu.Lock()
	cols, rows, closed := h.cols, h.rows, h.closed
	h.mu.Unlock()
	if closed {
		return
	}

	// the grid may already reflect a resize the simulator has not applied yet
	w := min(cols, frame.Width())
	hh := min(rows, frame.Height()/2)

	base := tcell.StyleDefault
	for y := 0; y < hh; y++ {
		for x := 0; x < w; x++ {
			upper := frame.At(x, 2*y)
			lower := frame.At(x, 2*y+1)
			style := base.Foreground(toTcell(upper, h.mode)).Background(toTcell(lower, h.mode))
			h.screen.SetContent(x, y, upperHalfBlock, nil, style)
		}
	}

	if h.hud != nil {
		h.hud.update(stats)
		h.hud.draw(h.screen, cols, h.mode)
	}

	h.screen.Show()
}

// Fini finalizes the screen once, Context reports false afterwards
func (h *Host) Fini() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	h.finiOnce.Do(h.screen.Fini)
}

// Run pumps screen events until quit key, context cancellation or screen shutdown
// Resizes are forwarded to listeners through post
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.handleEvent(ev) {
				return nil
			}
		}
	}
}

// handleEvent returns false when the user asked to quit
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return false
			}
		}

	case *tcell.EventResize:
		h.screen.Sync()
		cols, rows := ev.Size()
		h.resize(cols, rows)
	}
	return true
}

// resize records the new grid and notifies listeners on the loop goroutine
func (h *Host) resize(cols, rows int) {
	h.mu.Lock()
	if cols == h.cols && rows == h.rows {
		h.mu.Unlock()
		return
	}
	h.cols, h.rows = cols, rows
	vp := h.viewportLocked()
	h.mu.Unlock()

	notify := func() {
		h.mu.Lock()
		ids := make([]uint64, 0, len(h.listeners))
		for id := range h.listeners {
			ids = append(ids, id)
		}
		h.mu.Unlock()

		// A listener may detach another, re-check each before calling
		for _, id := range ids {
			h.mu.Lock()
			fn, ok := h.listeners[id]
			h.mu.Unlock()
			if ok {
				fn(vp)
			}
		}
	}

	if h.post == nil {
		notify()
		return
	}
	h.post(notify)
}

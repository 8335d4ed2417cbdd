package breakout

import (
	"errors"
	"fmt"
)

// Canvas is the host-provided drawing surface plus its input wiring.
type Canvas interface {
	Surface

	// Bounds returns the surface's current on-screen rectangle in device units.
	Bounds() Bounds

	// Attach registers h for pointer and touch movement over the surface.
	// Calling detach unregisters it; after detach returns, h is never called.
	Attach(h InputHandler) (detach func())
}

// FrameRequester is the host's display-refresh primitive. fn runs once, on
// the host's event loop, at the next frame.
type FrameRequester interface {
	RequestFrame(fn func())
}

// Config carries the run geometry and the host callbacks.
type Config struct {
	Layout  Layout
	Palette Palette

	// OnScore receives the cumulative score once per destroyed brick,
	// synchronously within the tick that destroyed it.
	OnScore func(score int)

	// OnEnd fires exactly once per run, when the ball leaves the bottom edge.
	// It is not called for explicit Stop.
	OnEnd func()
}

// DefaultConfig returns a Config with the default layout and palette and no callbacks.
func DefaultConfig() Config {
	return Config{
		Layout:  DefaultLayout(),
		Palette: DefaultPalette(),
	}
}

var (
	ErrNoCanvas = errors.New("breakout: no canvas")
	ErrNoFrames = errors.New("breakout: no frame requester")
)

// Game schedules runs: one kernel step and one render per frame, until the
// ball is lost or the host stops it. All methods must be called from the
// host's event loop; Game does no locking.
type Game struct {
	canvas Canvas
	frames FrameRequester
	cfg    Config

	state  *State
	gen    uint64 // Bumped on every Start; stale frames and handlers compare against it
	detach func()
}

// New creates a stopped game bound to a canvas and frame requester.
func New(canvas Canvas, frames FrameRequester, cfg Config) *Game {
	return &Game{
		canvas: canvas,
		frames: frames,
		cfg:    cfg,
	}
}

// Start stops any current run and begins a fresh one. It fails without
// starting when the canvas or frame requester is missing or the layout is
// invalid. The first tick runs on the first requested frame, not inside Start.
func (g *Game) Start() error {
	g.Stop()

	if g.canvas == nil {
		return ErrNoCanvas
	}
	if g.frames == nil {
		return ErrNoFrames
	}
	if err := g.cfg.Layout.Validate(); err != nil {
		return fmt.Errorf("breakout: invalid layout: %w", err)
	}

	g.gen++
	gen := g.gen

	g.state = NewState(g.cfg.Layout)
	g.state.Running = true

	g.detach = g.canvas.Attach(func(ev InputEvent) bool {
		return g.handleInput(gen, ev)
	})
	g.frames.RequestFrame(func() { g.frame(gen) })
	return nil
}

// Stop ends the current run without firing OnEnd. Safe to call at any time.
func (g *Game) Stop() {
	if !g.Running() {
		return
	}
	g.halt()
}

// Running reports whether a run is in progress.
func (g *Game) Running() bool {
	return g.state != nil && g.state.Running
}

func (g *Game) halt() {
	g.state.Running = false
	if g.detach != nil {
		g.detach()
		g.detach = nil
	}
}

func (g *Game) current(gen uint64) bool {
	return gen == g.gen && g.Running()
}

func (g *Game) handleInput(gen uint64, ev InputEvent) bool {
	if !g.current(gen) {
		return false
	}
	return g.state.ApplyInput(ev, g.canvas.Bounds())
}

func (g *Game) frame(gen uint64) {
	if !g.current(gen) {
		return
	}

	res := g.state.Step(func(score int) {
		if g.current(gen) && g.cfg.OnScore != nil {
			g.cfg.OnScore(score)
		}
	})

	// A score callback may have stopped or restarted the game.
	if !g.current(gen) {
		return
	}

	if res.Lost {
		g.halt()
		Render(g.canvas, g.state, g.cfg.Palette)
		if g.cfg.OnEnd != nil {
			g.cfg.OnEnd()
		}
		return
	}

	Render(g.canvas, g.state, g.cfg.Palette)
	g.frames.RequestFrame(func() { g.frame(gen) })
}

// Package window hosts the brick breaker in a desktop window using ebiten.
// The ebiten-specific code only builds with the "ebiten" tag; the pieces in
// this file are shared and build everywhere.
package window

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/session"
)

// ErrNoWindow is returned by Run when the binary was built without the ebiten tag.
var ErrNoWindow = errors.New("window: built without the ebiten tag")

// Options configures the window host.
type Options struct {
	Layout   breakout.Layout
	Palette  breakout.Palette
	Store    session.ScoreStore // Optional
	Logger   *log.Logger
	Title    string
	Scale    float64 // Initial window size relative to the logical canvas
	TickRate int     // Updates per second
}

// letterbox fits the logical canvas into an outW x outH window, keeping its
// aspect ratio and centering it.
func letterbox(outW, outH int, logicalW, logicalH float64) breakout.Bounds {
	if outW <= 0 || outH <= 0 || logicalW <= 0 || logicalH <= 0 {
		return breakout.Bounds{}
	}
	scale := min(float64(outW)/logicalW, float64(outH)/logicalH)
	w, h := logicalW*scale, logicalH*scale
	return breakout.Bounds{
		Left:   (float64(outW) - w) / 2,
		Top:    (float64(outH) - h) / 2,
		Width:  w,
		Height: h,
	}
}

// frameQueue collects frame callbacks and runs them on the next Update.
type frameQueue struct {
	pending []func()
}

// RequestFrame schedules fn for the next update.
func (q *frameQueue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// flush runs the callbacks queued so far. Callbacks requested while flushing
// wait for the next update.
func (q *frameQueue) flush() {
	ready := q.pending
	q.pending = nil
	for _, fn := range ready {
		fn()
	}
}

// handlerSet holds the input handlers attached by the game.
type handlerSet struct {
	handlers map[int]breakout.InputHandler
	nextID   int
}

// Attach registers h and returns a function that removes it.
func (s *handlerSet) Attach(h breakout.InputHandler) func() {
	if s.handlers == nil {
		s.handlers = make(map[int]breakout.InputHandler)
	}
	id := s.nextID
	s.nextID++
	s.handlers[id] = h
	return func() { delete(s.handlers, id) }
}

// dispatch delivers ev to every handler and reports whether any consumed it.
func (s *handlerSet) dispatch(ev breakout.InputEvent) bool {
	consumed := false
	for _, h := range s.handlers {
		if h(ev) {
			consumed = true
		}
	}
	return consumed
}

// pointerTracker turns polled cursor and touch positions into move events.
type pointerTracker struct {
	x, y int
	seen bool
}

// events returns the input events for one update. Active touches win over
// the cursor; the cursor only reports when it moved.
func (p *pointerTracker) events(cx, cy int, touches []breakout.Point) []breakout.InputEvent {
	if len(touches) > 0 {
		return []breakout.InputEvent{{
			Kind:    breakout.TouchMove,
			Pos:     touches[0],
			Touches: touches,
		}}
	}
	if p.seen && cx == p.x && cy == p.y {
		return nil
	}
	p.x, p.y, p.seen = cx, cy, true
	return []breakout.InputEvent{{
		Kind: breakout.PointerMove,
		Pos:  breakout.Point{X: float64(cx), Y: float64(cy)},
	}}
}

package breakout

import "image/color"

type drawOp struct {
	kind       string // "clear", "rect", "circle"
	x, y, w, h float64
	c          color.RGBA
}

// fakeCanvas records draw calls and input handler registrations.
type fakeCanvas struct {
	bounds   Bounds
	ops      []drawOp
	renders  int
	handlers map[int]InputHandler
	nextID   int
	attaches int
	detaches int
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{
		bounds:   Bounds{Width: 800, Height: 600},
		handlers: make(map[int]InputHandler),
	}
}

func (c *fakeCanvas) Clear(col color.RGBA) {
	c.renders++
	c.ops = append(c.ops[:0], drawOp{kind: "clear", c: col})
}

func (c *fakeCanvas) FillRect(x, y, w, h float64, col color.RGBA) {
	c.ops = append(c.ops, drawOp{kind: "rect", x: x, y: y, w: w, h: h, c: col})
}

func (c *fakeCanvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	c.ops = append(c.ops, drawOp{kind: "circle", x: cx, y: cy, w: r, h: r, c: col})
}

func (c *fakeCanvas) Bounds() Bounds { return c.bounds }

func (c *fakeCanvas) Attach(h InputHandler) func() {
	id := c.nextID
	c.nextID++
	c.attaches++
	c.handlers[id] = h
	return func() {
		c.detaches++
		delete(c.handlers, id)
	}
}

// send delivers ev to every attached handler and reports whether any consumed it.
func (c *fakeCanvas) send(ev InputEvent) bool {
	consumed := false
	for _, h := range c.handlers {
		if h(ev) {
			consumed = true
		}
	}
	return consumed
}

// fakeFrames queues frame callbacks until the test runs them.
type fakeFrames struct {
	pending []func()
	all     []func()
}

func (f *fakeFrames) RequestFrame(fn func()) {
	f.pending = append(f.pending, fn)
	f.all = append(f.all, fn)
}

// next runs the oldest pending frame. It returns false when none is queued.
func (f *fakeFrames) next() bool {
	if len(f.pending) == 0 {
		return false
	}
	fn := f.pending[0]
	f.pending = f.pending[1:]
	fn()
	return true
}

// drain runs frames until none are queued or limit is hit, returning the count run.
func (f *fakeFrames) drain(limit int) int {
	n := 0
	for n < limit && f.next() {
		n++
	}
	return n
}

package breakout

// Bounds is the on-screen rectangle of the drawing surface in device units
// (pixels, terminal cells, ...).
type Bounds struct {
	Left, Top     float64
	Width, Height float64
}

// Contains reports whether the device point lies inside the bounds.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.Left && x < b.Left+b.Width && y >= b.Top && y < b.Top+b.Height
}

// EventKind identifies the kind of input event.
type EventKind int

const (
	PointerMove EventKind = iota
	TouchMove
)

// Point is a device-space coordinate.
type Point struct {
	X, Y float64
}

// InputEvent is a pointer or touch movement in device units.
// Pointer events use Pos; touch events use Touches, of which only the first
// point steers the paddle.
type InputEvent struct {
	Kind    EventKind
	Pos     Point
	Touches []Point
}

// InputHandler consumes an input event. A true result tells the host to
// suppress its default handling (scrolling, gestures) for the event.
type InputHandler func(ev InputEvent) (consumed bool)

// ToLogicalX converts a device x-coordinate into logical canvas units.
// ok is false when the bounds have no width.
func ToLogicalX(deviceX float64, b Bounds, logicalWidth float64) (x float64, ok bool) {
	if b.Width <= 0 {
		return 0, false
	}
	return (deviceX - b.Left) * (logicalWidth / b.Width), true
}

// MovePaddle centers the paddle on logicalX and clamps it to the canvas.
func (s *State) MovePaddle(logicalX float64) {
	s.Paddle.X = logicalX - s.Paddle.Width/2
	s.Paddle.Clamp(s.layout.CanvasWidth)
}

// ApplyInput maps an event onto the paddle. It never touches the ball.
func (s *State) ApplyInput(ev InputEvent, b Bounds) (consumed bool) {
	var p Point
	switch ev.Kind {
	case PointerMove:
		p = ev.Pos
	case TouchMove:
		if len(ev.Touches) == 0 {
			return false
		}
		p = ev.Touches[0]
	default:
		return false
	}

	x, ok := ToLogicalX(p.X, b, s.layout.CanvasWidth)
	if !ok {
		return false
	}
	s.MovePaddle(x)

	return ev.Kind == TouchMove && b.Contains(p.X, p.Y)
}

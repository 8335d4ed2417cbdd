package breakout

// Ball represents the ball. X and Y are its center.
type Ball struct {
	X, Y   float64
	DX, DY float64 // Velocity per tick
	Radius float64
}

// Paddle represents the player's paddle.
type Paddle struct {
	X      float64 // Left edge
	Y      float64 // Top edge, fixed
	Width  float64
	Height float64
}

// Clamp keeps the paddle fully inside [0, canvasWidth].
func (p *Paddle) Clamp(canvasWidth float64) {
	p.X = max(0, min(p.X, canvasWidth-p.Width))
}

// Right returns the x-coordinate of the right edge.
func (p Paddle) Right() float64 {
	return p.X + p.Width
}

// BrickStatus is the two-state lifecycle of a brick.
type BrickStatus int

const (
	BrickActive BrickStatus = iota
	BrickDestroyed
)

// String returns a human-readable name for the status.
func (s BrickStatus) String() string {
	switch s {
	case BrickActive:
		return "active"
	case BrickDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Brick represents a single brick in the grid.
type Brick struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Status        BrickStatus
}

// Active reports whether the brick is still on the board.
func (b Brick) Active() bool {
	return b.Status == BrickActive
}

// Destroy marks the brick destroyed. There is no way back.
func (b *Brick) Destroy() {
	b.Status = BrickDestroyed
}

// Contains reports whether (x, y) lies strictly inside the brick.
func (b Brick) Contains(x, y float64) bool {
	return x > b.X && x < b.X+b.Width && y > b.Y && y < b.Y+b.Height
}

// State is the mutable model of one run.
type State struct {
	Ball    Ball
	Paddle  Paddle
	Bricks  []Brick // Row-major, stable for rendering
	Score   int
	Running bool
	Tick    uint64

	layout Layout
}

// NewState builds a fresh run from the layout: ball at its start position and
// velocity, paddle centered, every brick active, score zero.
func NewState(l Layout) *State {
	s := &State{
		Ball: Ball{
			X:      l.BallX,
			Y:      l.BallY,
			DX:     l.BallDX,
			DY:     l.BallDY,
			Radius: l.BallRadius,
		},
		Paddle: Paddle{
			X:      (l.CanvasWidth - l.PaddleWidth) / 2,
			Y:      l.PaddleY,
			Width:  l.PaddleWidth,
			Height: l.PaddleHeight,
		},
		Bricks: make([]Brick, 0, l.BrickRows*l.BrickCols),
		layout: l,
	}
	s.Paddle.Clamp(l.CanvasWidth)

	for row := range l.BrickRows {
		for col := range l.BrickCols {
			s.Bricks = append(s.Bricks, Brick{
				X:      l.BrickOffsetLeft + float64(col)*(l.BrickWidth+l.BrickPadding),
				Y:      l.BrickOffsetTop + float64(row)*(l.BrickHeight+l.BrickPadding),
				Width:  l.BrickWidth,
				Height: l.BrickHeight,
				Status: BrickActive,
			})
		}
	}
	return s
}

// Layout returns the layout this state was built from.
func (s *State) Layout() Layout {
	return s.layout
}

// ActiveBricks returns the number of bricks still on the board.
func (s *State) ActiveBricks() int {
	n := 0
	for _, b := range s.Bricks {
		if b.Active() {
			n++
		}
	}
	return n
}

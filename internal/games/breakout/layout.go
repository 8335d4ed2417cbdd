// Package breakout implements a fixed-canvas brick breaker: one ball, one
// paddle, a brick grid, and a frame-driven update/render loop that reports
// score and end-of-run events back to its host.
package breakout

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

// Layout is the geometry a run is built from. All values are logical canvas
// units; velocities are units per tick.
type Layout struct {
	CanvasWidth  float64
	CanvasHeight float64

	BallX, BallY   float64 // Ball start position (center)
	BallDX, BallDY float64 // Ball start velocity
	BallRadius     float64

	PaddleWidth  float64
	PaddleHeight float64
	PaddleY      float64 // Top edge, fixed for the whole run

	BrickRows       int
	BrickCols       int
	BrickWidth      float64
	BrickHeight     float64
	BrickPadding    float64
	BrickOffsetTop  float64
	BrickOffsetLeft float64

	BrickReward int

	// ReflectPerBrick negates DY once for every brick destroyed in a tick.
	// When false, DY is reflected at most once per tick.
	ReflectPerBrick bool
}

// DefaultLayout returns the canonical 800x600 layout with a 4x8 brick grid.
func DefaultLayout() Layout {
	l, _, err := FromConfig(config.DefaultBreakoutConfig())
	if err != nil {
		panic(fmt.Sprintf("breakout: default config is invalid: %v", err))
	}
	return l
}

// Validation errors returned (wrapped) by Layout.Validate.
var (
	ErrNonFinite   = errors.New("geometry must be finite")
	ErrCanvasSize  = errors.New("canvas dimensions must be positive")
	ErrPaddleSize  = errors.New("paddle dimensions must be positive")
	ErrPaddleWide  = errors.New("paddle is wider than the canvas")
	ErrBallRadius  = errors.New("ball radius must be positive")
	ErrBallStill   = errors.New("ball velocity must be non-zero")
	ErrBrickGrid   = errors.New("brick grid must have between 1 and 10000 bricks")
	ErrBrickSize   = errors.New("brick dimensions must be positive")
	ErrBrickReward = errors.New("brick reward must not be negative")
)

// maxBricks bounds the grid so a run's brick slice stays small.
const maxBricks = 10000

// Validate checks the layout for geometry a run cannot start with.
func (l Layout) Validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"canvas width", l.CanvasWidth}, {"canvas height", l.CanvasHeight},
		{"ball x", l.BallX}, {"ball y", l.BallY},
		{"ball dx", l.BallDX}, {"ball dy", l.BallDY},
		{"ball radius", l.BallRadius},
		{"paddle width", l.PaddleWidth}, {"paddle height", l.PaddleHeight},
		{"paddle y", l.PaddleY},
		{"brick width", l.BrickWidth}, {"brick height", l.BrickHeight},
		{"brick padding", l.BrickPadding},
		{"brick offset top", l.BrickOffsetTop}, {"brick offset left", l.BrickOffsetLeft},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is %g", ErrNonFinite, f.name, f.v)
		}
	}

	switch {
	case l.CanvasWidth <= 0 || l.CanvasHeight <= 0:
		return fmt.Errorf("%w: %gx%g", ErrCanvasSize, l.CanvasWidth, l.CanvasHeight)
	case l.PaddleWidth <= 0 || l.PaddleHeight <= 0:
		return fmt.Errorf("%w: %gx%g", ErrPaddleSize, l.PaddleWidth, l.PaddleHeight)
	case l.PaddleWidth > l.CanvasWidth:
		return fmt.Errorf("%w: %g > %g", ErrPaddleWide, l.PaddleWidth, l.CanvasWidth)
	case l.BallRadius <= 0:
		return fmt.Errorf("%w: %g", ErrBallRadius, l.BallRadius)
	case l.BallDX == 0 && l.BallDY == 0:
		return ErrBallStill
	case l.BrickRows <= 0 || l.BrickCols <= 0 ||
		l.BrickRows > maxBricks || l.BrickCols > maxBricks/l.BrickRows:
		return fmt.Errorf("%w: %dx%d", ErrBrickGrid, l.BrickRows, l.BrickCols)
	case l.BrickWidth <= 0 || l.BrickHeight <= 0:
		return fmt.Errorf("%w: %gx%g", ErrBrickSize, l.BrickWidth, l.BrickHeight)
	case l.BrickReward < 0:
		return fmt.Errorf("%w: %d", ErrBrickReward, l.BrickReward)
	}
	return nil
}

// FromConfig converts a loaded configuration into a Layout and Palette.
// Palette colors must be hex strings; the layout itself is not validated here.
func FromConfig(cfg config.BreakoutConfig) (Layout, Palette, error) {
	l := Layout{
		CanvasWidth:     cfg.Canvas.Width,
		CanvasHeight:    cfg.Canvas.Height,
		BallX:           cfg.Ball.X,
		BallY:           cfg.Ball.Y,
		BallDX:          cfg.Ball.DX,
		BallDY:          cfg.Ball.DY,
		BallRadius:      cfg.Ball.Radius,
		PaddleWidth:     cfg.Paddle.Width,
		PaddleHeight:    cfg.Paddle.Height,
		PaddleY:         cfg.Paddle.Y,
		BrickRows:       cfg.Bricks.Rows,
		BrickCols:       cfg.Bricks.Cols,
		BrickWidth:      cfg.Bricks.Width,
		BrickHeight:     cfg.Bricks.Height,
		BrickPadding:    cfg.Bricks.Padding,
		BrickOffsetTop:  cfg.Bricks.OffsetTop,
		BrickOffsetLeft: cfg.Bricks.OffsetLeft,
		BrickReward:     cfg.Scoring.BrickReward,
		ReflectPerBrick: cfg.Rules.ReflectPerBrick,
	}

	p, err := ParsePalette(cfg.Palette)
	if err != nil {
		return l, Palette{}, err
	}
	return l, p, nil
}

package breakout

import "math"

// StepResult describes what happened during one kernel step.
type StepResult struct {
	Destroyed int  // Bricks destroyed this tick
	Lost      bool // Ball fell below the bottom edge
}

// Step advances the simulation by one tick. Checks run in a fixed order:
// integrate, side walls, top wall, paddle, bricks, loss. onScore, when non-nil,
// is called with the cumulative score once per destroyed brick.
//
// Step never changes Running; the caller decides what a loss means. If the
// state was running and onScore stops it, Step returns at once without
// touching further bricks.
func (s *State) Step(onScore func(score int)) StepResult {
	var res StepResult
	live := s.Running
	b := &s.Ball
	l := s.layout

	s.Tick++

	b.X += b.DX
	b.Y += b.DY

	if b.X+b.Radius > l.CanvasWidth || b.X-b.Radius < 0 {
		b.DX = -b.DX
	}

	if b.Y-b.Radius < 0 {
		b.DY = -b.DY
	}

	// Forced upward, never toggled, so repeated contact cannot trap the ball.
	if b.Y+b.Radius >= s.Paddle.Y && b.X > s.Paddle.X && b.X < s.Paddle.Right() {
		b.DY = -math.Abs(b.DY)
	}

	for i := range s.Bricks {
		brick := &s.Bricks[i]
		if !brick.Active() || !brick.Contains(b.X, b.Y) {
			continue
		}
		brick.Destroy()
		res.Destroyed++
		if l.ReflectPerBrick || res.Destroyed == 1 {
			b.DY = -b.DY
		}
		s.Score += l.BrickReward
		if onScore != nil {
			onScore(s.Score)
			if live && !s.Running {
				return res
			}
		}
	}

	if b.Y > l.CanvasHeight {
		res.Lost = true
	}
	return res
}

package breakout

import (
	"hash/fnv"
	"math"
	"strconv"
)

// Snapshot is a value copy of a run, safe to keep after the next tick.
type Snapshot struct {
	Tick         uint64
	Ball         Ball
	Paddle       Paddle
	Bricks       []Brick
	ActiveBricks int
	Score        int
	Running      bool
}

// Snapshot returns a copy of the current run. Before the first Start it
// returns the zero Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{}
	}
	return g.state.Snapshot()
}

// Snapshot returns a copy of the state.
func (s *State) Snapshot() Snapshot {
	bricks := make([]Brick, len(s.Bricks))
	copy(bricks, s.Bricks)
	return Snapshot{
		Tick:         s.Tick,
		Ball:         s.Ball,
		Paddle:       s.Paddle,
		Bricks:       bricks,
		ActiveBricks: s.ActiveBricks(),
		Score:        s.Score,
		Running:      s.Running,
	}
}

// Hash returns an FNV-1a digest of the snapshot, for cheap equality checks.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf []byte
	put := func(f float64) {
		buf = strconv.AppendUint(buf[:0], math.Float64bits(f), 16)
		_, _ = h.Write(buf)
	}

	buf = strconv.AppendUint(buf[:0], snap.Tick, 10)
	_, _ = h.Write(buf)
	put(snap.Ball.X)
	put(snap.Ball.Y)
	put(snap.Ball.DX)
	put(snap.Ball.DY)
	put(snap.Paddle.X)
	put(float64(snap.Score))
	if snap.Running {
		_, _ = h.Write([]byte{1})
	}
	for _, b := range snap.Bricks {
		_, _ = h.Write([]byte{byte(b.Status)})
	}
	return h.Sum64()
}

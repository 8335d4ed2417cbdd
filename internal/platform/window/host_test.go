package window

import (
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
)

func TestLetterbox(t *testing.T) {
	tests := []struct {
		name       string
		outW, outH int
		expected   breakout.Bounds
	}{
		{"exact fit", 800, 600, breakout.Bounds{Left: 0, Top: 0, Width: 800, Height: 600}},
		{"wide window", 1600, 600, breakout.Bounds{Left: 400, Top: 0, Width: 800, Height: 600}},
		{"tall window", 400, 600, breakout.Bounds{Left: 0, Top: 150, Width: 400, Height: 300}},
		{"doubled", 1600, 1200, breakout.Bounds{Left: 0, Top: 0, Width: 1600, Height: 1200}},
		{"empty", 0, 600, breakout.Bounds{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := letterbox(tc.outW, tc.outH, 800, 600); got != tc.expected {
				t.Errorf("letterbox(%d, %d) = %+v, expected %+v", tc.outW, tc.outH, got, tc.expected)
			}
		})
	}
}

func TestLetterboxDrivesInputMapping(t *testing.T) {
	b := letterbox(1600, 600, 800, 600)

	x, ok := breakout.ToLogicalX(800, b, 800)
	if !ok || x != 400 {
		t.Errorf("ToLogicalX(800) = %v, %v, expected 400, true", x, ok)
	}
}

func TestFrameQueue(t *testing.T) {
	var q frameQueue
	calls := 0
	q.RequestFrame(func() {
		calls++
		q.RequestFrame(func() { calls++ })
	})

	q.flush()
	if calls != 1 {
		t.Errorf("calls after first flush = %d, expected 1", calls)
	}
	q.flush()
	if calls != 2 {
		t.Errorf("calls after second flush = %d, expected 2", calls)
	}
	q.flush()
	if calls != 2 {
		t.Errorf("calls after empty flush = %d, expected 2", calls)
	}
}

func TestHandlerSet(t *testing.T) {
	var s handlerSet
	seen := 0
	detach := s.Attach(func(breakout.InputEvent) bool {
		seen++
		return false
	})
	s.Attach(func(ev breakout.InputEvent) bool {
		return ev.Kind == breakout.TouchMove
	})

	if s.dispatch(breakout.InputEvent{Kind: breakout.PointerMove}) {
		t.Error("pointer move should not be consumed")
	}
	if !s.dispatch(breakout.InputEvent{Kind: breakout.TouchMove}) {
		t.Error("touch move should be consumed")
	}

	detach()
	s.dispatch(breakout.InputEvent{Kind: breakout.PointerMove})
	if seen != 2 {
		t.Errorf("detached handler saw %d events, expected 2", seen)
	}
}

func TestPointerTracker(t *testing.T) {
	var p pointerTracker

	evs := p.events(10, 20, nil)
	if len(evs) != 1 || evs[0].Kind != breakout.PointerMove || evs[0].Pos.X != 10 {
		t.Fatalf("first events = %+v, expected one pointer move at x=10", evs)
	}

	if evs := p.events(10, 20, nil); len(evs) != 0 {
		t.Errorf("unchanged cursor produced %d events", len(evs))
	}

	touches := []breakout.Point{{X: 5, Y: 6}, {X: 50, Y: 60}}
	evs = p.events(10, 20, touches)
	if len(evs) != 1 || evs[0].Kind != breakout.TouchMove {
		t.Fatalf("touch events = %+v, expected one touch move", evs)
	}
	if evs[0].Touches[0] != touches[0] {
		t.Errorf("first touch = %+v, expected %+v", evs[0].Touches[0], touches[0])
	}

	if evs := p.events(11, 20, nil); len(evs) != 1 {
		t.Errorf("moved cursor produced %d events, expected 1", len(evs))
	}
}

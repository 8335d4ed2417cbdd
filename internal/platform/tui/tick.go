// Package tui provides the Bubble Tea host for the brick breaker.
// It handles the terminal UI loop, input mapping, and the frame clock.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a display refresh.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after one frame interval.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameQueue implements breakout.FrameRequester on top of tea.Tick.
// Callbacks requested during a flush run on the following tick.
type frameQueue struct {
	pending []func()
	ticking bool // A tick command is in flight
}

// RequestFrame queues fn for the next tick.
func (q *frameQueue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// flush runs every callback queued before the call.
func (q *frameQueue) flush() {
	fns := q.pending
	q.pending = nil
	for _, fn := range fns {
		fn()
	}
}

// schedule returns a tick command when callbacks are waiting and no tick is in flight.
func (q *frameQueue) schedule(tickRate int) tea.Cmd {
	if q.ticking || len(q.pending) == 0 {
		return nil
	}
	q.ticking = true
	return tickCmd(tickRate)
}

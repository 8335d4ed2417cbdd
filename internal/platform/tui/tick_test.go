package tui

import "testing"

func TestFrameQueue(t *testing.T) {
	q := &frameQueue{}

	if q.schedule(60) != nil {
		t.Error("schedule() with nothing queued should return nil")
	}

	ran := []string{}
	q.RequestFrame(func() {
		ran = append(ran, "first")
		q.RequestFrame(func() { ran = append(ran, "second") })
	})

	if q.schedule(60) == nil {
		t.Fatal("schedule() with a queued frame should return a tick")
	}
	if q.schedule(60) != nil {
		t.Error("schedule() while a tick is in flight should return nil")
	}

	q.ticking = false
	q.flush()
	if len(ran) != 1 || ran[0] != "first" {
		t.Errorf("first flush ran %v, expected [first]", ran)
	}
	if len(q.pending) != 1 {
		t.Errorf("pending = %d, expected the re-requested frame", len(q.pending))
	}

	q.flush()
	if len(ran) != 2 || ran[1] != "second" {
		t.Errorf("second flush ran %v, expected [first second]", ran)
	}
}

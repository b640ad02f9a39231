package overlay

import (
	"time"

	"github.com/hazyhaar/skelwatch/skeleton"
)

// tracker holds the "currently hovered element" state: the latest pointer
// geometry and the overlay rect computed from it. With a zero window every
// move is applied immediately, matching the original unthrottled behaviour.
// A positive window keeps only the latest move per window, for pages that
// fire pathological volumes of pointer events.
type tracker struct {
	window time.Duration

	has     bool
	last    moveEvent
	overlay skeleton.OverlayRect

	pending *moveEvent
	timer   *time.Timer
	timerCh <-chan time.Time
}

func newTracker(window time.Duration) tracker {
	return tracker{window: window}
}

// observe takes a raw move event and returns the event to apply now, or nil
// when it was deferred into the coalescing window.
func (t *tracker) observe(ev moveEvent) *moveEvent {
	if t.window <= 0 {
		return &ev
	}

	// Keep-latest: a newer move inside the window replaces the pending one.
	t.pending = &ev
	if t.timer == nil {
		t.timer = time.NewTimer(t.window)
		t.timerCh = t.timer.C
	}
	return nil
}

// timerC returns the channel that fires when the coalescing window expires.
func (t *tracker) timerC() <-chan time.Time {
	return t.timerCh
}

// flush returns the pending move and resets the window.
func (t *tracker) flush() *moveEvent {
	mv := t.pending
	t.pending = nil
	t.timer = nil
	t.timerCh = nil
	return mv
}

// setTarget records the applied move as the current hover state.
func (t *tracker) setTarget(mv moveEvent, r skeleton.OverlayRect) {
	t.has = true
	t.last = mv
	t.overlay = r
}

func (t *tracker) hasTarget() bool {
	return t.has
}

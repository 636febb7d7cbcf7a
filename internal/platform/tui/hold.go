package tui

import (
	"time"

	"github.com/vovakirdan/platformer/internal/core"
)

const (
	// DefaultInitialHold covers the pause before a terminal starts
	// auto-repeating a held key (about 500ms on Windows, 660ms on X11).
	DefaultInitialHold = 700 * time.Millisecond

	// DefaultHold is how long a direction stays held between key repeats.
	DefaultHold = 300 * time.Millisecond
)

// HoldTracker turns terminal key presses into held directions.
// Terminals report presses and auto-repeats but never releases, so a
// direction is released once no repeat arrives in time, or at once when the
// opposite direction is pressed. The first press waits out the initial
// repeat delay; later repeats only need to arrive within the hold window.
type HoldTracker struct {
	initial  time.Duration
	hold     time.Duration
	deadline map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. Non-positive durations use
// DefaultInitialHold and DefaultHold. The initial window is never shorter
// than the hold window.
func NewHoldTracker(initial, hold time.Duration) *HoldTracker {
	if hold <= 0 {
		hold = DefaultHold
	}
	if initial <= 0 {
		initial = DefaultInitialHold
	}
	return &HoldTracker{
		initial:  max(initial, hold),
		hold:     hold,
		deadline: make(map[core.Action]time.Time),
	}
}

// Press records a press or repeat of a direction and writes it to frame.
// A press supersedes a release of the same direction earlier in the frame.
// Other actions are ignored.
func (h *HoldTracker) Press(a core.Action, now time.Time, frame *core.InputFrame) {
	opposite, ok := oppositeOf(a)
	if !ok {
		return
	}
	if _, held := h.deadline[opposite]; held {
		delete(h.deadline, opposite)
		frame.Release(opposite)
	}

	window := h.initial
	if _, held := h.deadline[a]; held {
		window = h.hold
	}
	h.deadline[a] = now.Add(window)
	delete(frame.Releases, a)
	frame.Set(a)
}

// Expire releases every direction whose deadline has passed.
func (h *HoldTracker) Expire(now time.Time, frame *core.InputFrame) {
	for a, d := range h.deadline {
		if !now.Before(d) {
			delete(h.deadline, a)
			frame.Release(a)
		}
	}
}

// Held reports whether a direction is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.deadline[a]
	return ok
}

// Reset forgets every held direction without emitting releases.
func (h *HoldTracker) Reset() {
	clear(h.deadline)
}

func oppositeOf(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	}
	return core.ActionNone, false
}

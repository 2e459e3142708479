package input

import "time"

// HoldTracker synthesizes held state from key-press events
// Terminals report presses and auto-repeat but no releases: a signal counts
// as held until window passes without a repeat
type HoldTracker struct {
	window   time.Duration
	lastSeen [signalCount]time.Time
}

func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{window: window}
}

// Press records a press or repeat of sig at now
func (h *HoldTracker) Press(sig Signal, now time.Time) {
	if sig < signalCount {
		h.lastSeen[sig] = now
	}
}

// Release forgets sig immediately
func (h *HoldTracker) Release(sig Signal) {
	if sig < signalCount {
		h.lastSeen[sig] = time.Time{}
	}
}

// State returns the held set as of now
func (h *HoldTracker) State(now time.Time) State {
	var s State
	for i, t := range h.lastSeen {
		if !t.IsZero() && now.Sub(t) < h.window {
			s = s.With(Signal(i))
		}
	}
	return s
}

// Reset releases every signal
func (h *HoldTracker) Reset() {
	h.lastSeen = [signalCount]time.Time{}
}

package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the host frame interval (~60 FPS); one simulation tick per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single tick's dt so a stalled host does not fast-forward timers
	MaxFrameDelta = 250 * time.Millisecond

	// SnapshotEvery is the tick stride for pushing snapshots to the presentation sink
	SnapshotEvery = 5

	// KeyHoldWindow is how long a terminal key press stays held without a repeat
	KeyHoldWindow = 150 * time.Millisecond

	// TimelineInitialCapacity is the pre-allocated scheduled task slots
	TimelineInitialCapacity = 16
)

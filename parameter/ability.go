package parameter

import (
	"math"
	"time"
)

// AbilityCooldown is armed after every completed activation
const AbilityCooldown = 20 * time.Second

// Burst
const (
	BurstBoostDuration = 3 * time.Second
)

// Phase
const (
	PhaseDuration = 5 * time.Second
)

// Pulse
const (
	PulseRadius   = 600.0
	PulseDuration = 1200 * time.Millisecond
)

// TurboAI
const (
	TurboDuration = 6 * time.Second
)

// Teleport
const (
	// TeleportObstaclePadding rejects targets this close to an obstacle
	TeleportObstaclePadding = 30.0
)

// Mirror
const (
	MirrorDuration  = 4 * time.Second
	MirrorDashDelay = 700 * time.Millisecond

	// MirrorHeading is the reference angle the heading snaps to (up)
	MirrorHeading = -math.Pi / 2

	// MirrorDashSpeed is the scripted translation per tick during the dash
	MirrorDashSpeed = 28.0

	// MirrorCloneSpacing is the lateral gap between the player and successive clones
	MirrorCloneSpacing = 130.0

	// MirrorMaxClones is the clone cap
	MirrorMaxClones = 4
)

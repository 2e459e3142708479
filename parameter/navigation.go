package parameter

// Autopilot Whiskers
const (
	// WhiskerLookAhead is the probe distance from the player
	WhiskerLookAhead = 160.0

	// WhiskerSideAngle is the angular offset of the side probes in radians
	WhiskerSideAngle = 0.7

	// WhiskerAheadPadding and WhiskerSidePadding pad obstacles for probes
	WhiskerAheadPadding = 60.0
	WhiskerSidePadding  = 50.0
)

// Autopilot Steering
const (
	// AvoidTurnFactor is the turn-rate multiple when dodging toward a free side
	AvoidTurnFactor = 1.8

	// PanicTurnFactor is the turn-rate multiple when both or neither side is free
	PanicTurnFactor = 3.0

	// SideNudgeFactor is the turn-rate multiple away from a side-only hit
	SideNudgeFactor = 0.8

	// SeekGain scales the bearing error into a turn bias
	SeekGain = 0.15

	// SeekGainWhileAvoiding damps seeking while the ahead probe hits
	SeekGainWhileAvoiding = 0.3

	// MaxTurnBiasFactor clamps the combined bias to this many turn rates
	MaxTurnBiasFactor = 3.0

	// BrakeAccelFactor scales forward acceleration while braking
	BrakeAccelFactor = 0.3

	// AutoBoostFuelThreshold is the fuel level above which autopilot boosts
	AutoBoostFuelThreshold = 40.0
)

package parameter

import "time"

// Effect Durations
const (
	CoinBoostDuration  = 5 * time.Second
	SpeedBoostDuration = 5 * time.Second
	MagnetDuration     = 10 * time.Second
	AutoDriveDuration  = 10 * time.Second
	HyperdriveDuration = 15 * time.Second
)

// Speed Multipliers, stacked multiplicatively
const (
	CoinBoostSpeedMult  = 1.5
	SpeedBoostSpeedMult = 1.5
	AutoDriveSpeedMult  = 1.5
	HyperdriveSpeedMult = 3.0
)

// Hyperdrive
const (
	// HyperdriveChance is the default Bernoulli probability of the combo roll
	HyperdriveChance = 0.3
)

// Pickup Radii
const (
	PowerUpPickupRadius = 40.0
	CoinPickupRadius    = 40.0
	MagnetPickupRadius  = 150.0
	HyperPickupRadius   = 225.0
)

// Power-Up Spawning
const (
	PowerUpSpawnInterval = 7 * time.Second

	// PowerUpMargin keeps spawn points away from the world edge
	PowerUpMargin = 200.0

	// PowerUpObstaclePadding rejects spawn points this close to an obstacle
	PowerUpObstaclePadding = 50.0

	// PowerUpMaxAttempts bounds rejection sampling per spawn cycle
	PowerUpMaxAttempts = 100

	// SpawnNearPlayerChance is the default probability of biasing a spawn near the player
	SpawnNearPlayerChance = 0.35

	// SpawnNearPlayerRadius is the half-width of the biased spawn square
	SpawnNearPlayerRadius = 900.0

	// AutoDriveUnlockTime is the run clock after which AutoDrive may spawn
	AutoDriveUnlockTime = 150 * time.Second

	// AutoDriveSpawnInterval is the minimum gap between AutoDrive spawns
	AutoDriveSpawnInterval = 50 * time.Second
)

// Boundary Penalty
const (
	BoundaryPenaltyTime     = 10 * time.Second
	BoundaryPenaltyCooldown = 3 * time.Second
)

// Notification Lifetimes
const (
	CutsceneDuration      = 1500 * time.Millisecond
	SpawnAlertDuration    = 3 * time.Second
	PenaltyNoticeDuration = 2 * time.Second
	AbilityNoticeDuration = 2 * time.Second
	UnlockNoticeDuration  = 4 * time.Second
)

// Scoring
const (
	ScoreBase           = 10000.0
	ScorePerSecond      = 10.0
	ScorePerCoin        = 100.0
	UnlockTimeThreshold = 78 * time.Second
)

// Player Name
const (
	MaxNameLength = 15
)

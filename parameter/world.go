package parameter

// World Layout
const (
	// WorldSize is the default side length of the square world
	WorldSize = 4000.0

	// ObstacleCount is the default number of generated obstacles
	ObstacleCount = 60

	// ObstacleMargin keeps obstacle origins away from the world edge
	ObstacleMargin = 100.0

	// ObstacleMinSize and ObstacleSizeRange bound generated rectangle sides
	ObstacleMinSize   = 60.0
	ObstacleSizeRange = 100.0

	// ObstacleStartClearance is the padding around the start point no obstacle may cover
	ObstacleStartClearance = 60.0

	// ObstacleMaxAttempts bounds rejection sampling during generation
	ObstacleMaxAttempts = 1000

	// SectorDivisions splits the world side into the teleport sector grid (7x7)
	SectorDivisions = 7
)

// Coin Placement
const (
	// InitialCoinCount is the default number of coins per run
	InitialCoinCount = 50

	// CoinMargin keeps coins away from the world edge
	CoinMargin = 100.0

	// CoinObstaclePadding rejects coin points this close to an obstacle
	CoinObstaclePadding = 30.0

	// CoinMaxAttempts bounds rejection sampling for the coin batch
	CoinMaxAttempts = 1000

	// TutorialCoinID identifies the single tutorial coin
	TutorialCoinID = 999

	// TutorialCoinOffsetX places the tutorial coin to the right of the start point
	TutorialCoinOffsetX = 300.0
)

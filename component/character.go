package component

// AbilityKind is the closed set of character abilities
type AbilityKind uint8

const (
	AbilityNone AbilityKind = iota
	AbilityBurst
	AbilityPhase
	AbilityPulse
	AbilityTurboAI
	AbilityTeleport
	AbilityMirror
)

var abilityNames = [...]string{
	AbilityNone:     "none",
	AbilityBurst:    "burst",
	AbilityPhase:    "phase",
	AbilityPulse:    "pulse",
	AbilityTurboAI:  "turbo_ai",
	AbilityTeleport: "teleport",
	AbilityMirror:   "mirror",
}

func (k AbilityKind) String() string {
	if int(k) < len(abilityNames) {
		return abilityNames[k]
	}
	return "unknown"
}

// Character is the immutable vehicle configuration chosen at game start
type Character struct {
	ID   string
	Name string

	// Stat multipliers, all positive
	SpeedFactor      float64
	HandlingFactor   float64
	BoostPowerFactor float64

	Ability            AbilityKind
	AbilityName        string
	AbilityDescription string

	// Secret characters are locked until an unlock flag is persisted
	Secret    bool
	UnlockKey string
}

// Unlock flag keys written when a run is won under the time threshold
const (
	UnlockWarp   = "warp_unlocked"
	UnlockMirror = "mirror_unlocked"
)

// Characters is the selectable roster
var Characters = []Character{
	{
		ID: "dash", Name: "Dashing Dino",
		SpeedFactor: 1.1, HandlingFactor: 0.9, BoostPowerFactor: 1.2,
		Ability:            AbilityBurst,
		AbilityName:        "Nitro Burst",
		AbilityDescription: "Instantly refills all Nitro and grants 3s of Invincibility.",
	},
	{
		ID: "bolt", Name: "Bolt Bunny",
		SpeedFactor: 0.9, HandlingFactor: 1.2, BoostPowerFactor: 1.0,
		Ability:            AbilityPhase,
		AbilityName:        "Phase Leap",
		AbilityDescription: "Become ghostly and drive through any obstacle for 5 seconds.",
	},
	{
		ID: "sparky", Name: "Sparky Squirrel",
		SpeedFactor: 1.0, HandlingFactor: 1.0, BoostPowerFactor: 1.1,
		Ability:            AbilityPulse,
		AbilityName:        "Electric Pulse",
		AbilityDescription: "Instantly pulls in all coins within a massive radius.",
	},
	{
		ID: "fizz", Name: "Fizz Fox",
		SpeedFactor: 1.2, HandlingFactor: 0.8, BoostPowerFactor: 0.9,
		Ability:            AbilityTurboAI,
		AbilityName:        "Turbo AI",
		AbilityDescription: "Activates AI Auto-Pilot and Speed Boost for 6 seconds.",
	},
	{
		ID: "warp", Name: "Warp Wizard",
		SpeedFactor: 1.0, HandlingFactor: 1.0, BoostPowerFactor: 1.0,
		Ability:            AbilityTeleport,
		AbilityName:        "Chrono-Teleport",
		AbilityDescription: "Open a map, teleport anywhere, and collect all coins in a 7x7 sector!",
		Secret:             true,
		UnlockKey:          UnlockWarp,
	},
	{
		ID: "echo", Name: "Echo Eagle",
		SpeedFactor: 1.0, HandlingFactor: 1.1, BoostPowerFactor: 1.0,
		Ability:            AbilityMirror,
		AbilityName:        "Mirror Rush",
		AbilityDescription: "Split into four mirror images and sweep forward, collecting everything in the path.",
		Secret:             true,
		UnlockKey:          UnlockMirror,
	},
}

// CharacterByID looks up a roster entry
func CharacterByID(id string) (Character, bool) {
	for _, c := range Characters {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}

package event

// Category classifies a transient notification for collaborators
type Category int

const (
	// CategorySpawnAlert announces a rare power-up spawn
	// Trigger: SpawnSystem on AutoDrive spawn
	// Consumer: HUD banner | Lifetime: SpawnAlertDuration
	CategorySpawnAlert Category = iota

	// CategoryPenalty reports a boundary time penalty
	// Trigger: BoundarySystem on unguarded hit outside cooldown
	// Consumer: HUD banner | Lifetime: PenaltyNoticeDuration
	CategoryPenalty

	// CategoryCutscene starts a full-screen "hyper" or "stop" cutscene
	// Trigger: HyperdriveSystem on successful roll, TimerSystem on expiry
	// Consumer: Cutscene overlay | Lifetime: CutsceneDuration
	CategoryCutscene

	// CategoryAbility reports an ability-specific result
	// Trigger: AbilitySystem, Pulse and Mirror activations
	// Consumer: HUD banner | Lifetime: AbilityNoticeDuration
	CategoryAbility

	// CategoryTeleport reports teleport selection outcomes
	// Trigger: Controller.SelectTeleportTarget
	// Consumer: HUD banner | Lifetime: AbilityNoticeDuration
	CategoryTeleport

	// CategoryUnlock reports newly earned unlock flags
	// Trigger: WinSystem on fast win
	// Consumer: Victory screen | Lifetime: UnlockNoticeDuration
	CategoryUnlock
)

var categoryNames = [...]string{
	CategorySpawnAlert: "spawn_alert",
	CategoryPenalty:    "penalty",
	CategoryCutscene:   "cutscene",
	CategoryAbility:    "ability",
	CategoryTeleport:   "teleport",
	CategoryUnlock:     "unlock",
}

func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Cutscene types carried by CategoryCutscene notifications
const (
	CutsceneHyper = "hyper"
	CutsceneStop  = "stop"
)

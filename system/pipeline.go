package system

import "github.com/lixenwraith/super-dash/engine"

// Default returns the full per-tick pipeline
func Default() []engine.System {
	return []engine.System{
		NewTimerSystem(),
		NewAbilitySystem(),
		NewHyperdriveSystem(),
		NewSpawnSystem(),
		NewMotionSystem(),
		NewCollisionSystem(),
		NewBoundarySystem(),
		NewPickupSystem(),
		NewWinSystem(),
	}
}

// NewController builds a controller running the default pipeline
func NewController(opts engine.Options) *engine.Controller {
	return engine.NewController(opts, Default()...)
}

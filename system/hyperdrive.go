package system

import (
	"time"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/constant"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/event"
	"github.com/lixenwraith/super-dash/input"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/status"
)

// HyperdriveSystem rolls the combo once per Speed pickup
// Conditions: roll eligible, coin boost, speed boost, boost held, fuel left
// Deferred while a teleport target is being chosen
type HyperdriveSystem struct{}

func NewHyperdriveSystem() engine.System {
	return &HyperdriveSystem{}
}

func (s *HyperdriveSystem) Name() string {
	return "hyperdrive"
}

func (s *HyperdriveSystem) Priority() int {
	return constant.PriorityHyperdrive
}

func (s *HyperdriveSystem) Update(st *engine.State, _ time.Duration) {
	if st.Selecting() || !st.HyperRollEligible {
		return
	}
	if !st.Effects.Active(component.EffectCoinBoost) || !st.Effects.Active(component.EffectSpeedBoost) {
		return
	}
	if !st.Input.Held(input.SignalBoost) || st.Player.BoostFuel <= 0 {
		return
	}

	st.HyperRollEligible = false
	st.Stats.Inc(status.KeyHyperRolls)
	if !st.RNG.Chance(st.Options.HyperdriveChance) {
		st.Options.Logger.Debug("hyperdrive roll failed")
		return
	}
	st.Effects.ArmDefault(component.EffectHyperdrive)
	st.Stats.Inc(status.KeyHyperEngaged)
	st.Notify(event.CategoryCutscene, "HYPERDRIVE!", event.CutsceneHyper, parameter.CutsceneDuration)
	st.Options.Logger.Info("hyperdrive engaged", "run_clock", st.RunClock)
}

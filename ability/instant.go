package ability

import (
	"fmt"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/parameter"
)

// Burst refills fuel and grants a short coin and speed boost
type Burst struct{}

func (Burst) Kind() component.AbilityKind { return component.AbilityBurst }

func (Burst) Activate(s *engine.State) Outcome {
	s.Player.BoostFuel = parameter.MaxBoost
	s.Effects.Arm(component.EffectCoinBoost, parameter.BurstBoostDuration)
	s.Effects.Arm(component.EffectSpeedBoost, parameter.BurstBoostDuration)
	armCooldown(s)
	announce(s, "NITRO BURST!")
	return OutcomeActivated
}

// Phase ignores obstacle collisions while its effect runs
type Phase struct{}

func (Phase) Kind() component.AbilityKind { return component.AbilityPhase }

func (Phase) Activate(s *engine.State) Outcome {
	s.Effects.ArmDefault(component.EffectPhase)
	armCooldown(s)
	announce(s, "PHASE LEAP!")
	return OutcomeActivated
}

// Pulse collects every uncollected coin inside the pulse radius
type Pulse struct{}

func (Pulse) Kind() component.AbilityKind { return component.AbilityPulse }

func (Pulse) Activate(s *engine.State) Outcome {
	n := 0
	for i := range s.Coins {
		if s.Coins[i].Collected || !s.Player.Position.Within(s.Coins[i].Position, parameter.PulseRadius) {
			continue
		}
		if s.CollectCoin(i, parameter.AbilityCoinFuelRefund, false) {
			n++
		}
	}
	s.Effects.ArmDefault(component.EffectPulse)
	armCooldown(s)
	announce(s, fmt.Sprintf("ELECTRIC PULSE! +%d COINS", n))
	return OutcomeActivated
}

// TurboAI hands steering to the autopilot with a speed boost
type TurboAI struct{}

func (TurboAI) Kind() component.AbilityKind { return component.AbilityTurboAI }

func (TurboAI) Activate(s *engine.State) Outcome {
	s.Effects.Arm(component.EffectAutoDrive, parameter.TurboDuration)
	s.Effects.Arm(component.EffectSpeedBoost, parameter.TurboDuration)
	armCooldown(s)
	announce(s, "TURBO AI ENGAGED!")
	return OutcomeActivated
}

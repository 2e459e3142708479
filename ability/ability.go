// Package ability implements one activation behavior per character ability kind
package ability

import (
	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/event"
	"github.com/lixenwraith/super-dash/parameter"
)

// Outcome is the result of an activation attempt
type Outcome int

const (
	// OutcomeIgnored means the gate rejected the attempt; nothing changed
	OutcomeIgnored Outcome = iota
	// OutcomeActivated means the ability ran; cooldown is armed now or at its end
	OutcomeActivated
	// OutcomePending means the ability awaits a target selection
	OutcomePending
)

func (o Outcome) String() string {
	switch o {
	case OutcomeActivated:
		return "activated"
	case OutcomePending:
		return "pending"
	default:
		return "ignored"
	}
}

// Ability is one variant of the closed AbilityKind set
type Ability interface {
	Kind() component.AbilityKind
	Activate(s *engine.State) Outcome
}

var registry = map[component.AbilityKind]Ability{
	component.AbilityBurst:    Burst{},
	component.AbilityPhase:    Phase{},
	component.AbilityPulse:    Pulse{},
	component.AbilityTurboAI:  TurboAI{},
	component.AbilityTeleport: Teleport{},
	component.AbilityMirror:   Mirror{},
}

// For returns the implementation of kind, nil for AbilityNone
func For(kind component.AbilityKind) Ability {
	return registry[kind]
}

// Ready reports whether an activation would pass the gate
func Ready(s *engine.State) bool {
	if s.Character == nil || For(s.Character.Ability) == nil {
		return false
	}
	return !s.Effects.Active(component.EffectAbilityCooldown) && !s.AbilityBusy()
}

// Trigger gates and dispatches the selected character's ability
func Trigger(s *engine.State) Outcome {
	if !Ready(s) {
		return OutcomeIgnored
	}
	return For(s.Character.Ability).Activate(s)
}

func armCooldown(s *engine.State) {
	s.Effects.ArmDefault(component.EffectAbilityCooldown)
}

func announce(s *engine.State, text string) {
	s.Notify(event.CategoryAbility, text, "", parameter.AbilityNoticeDuration)
}

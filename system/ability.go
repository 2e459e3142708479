package system

import (
	"time"

	"github.com/lixenwraith/super-dash/ability"
	"github.com/lixenwraith/super-dash/constant"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/input"
	"github.com/lixenwraith/super-dash/status"
)

// AbilitySystem resolves activation requests after timers have run
// Sources: rising edge of the ability signal, or a queued Controller.UseAbility
type AbilitySystem struct{}

func NewAbilitySystem() engine.System {
	return &AbilitySystem{}
}

func (s *AbilitySystem) Name() string {
	return "ability"
}

func (s *AbilitySystem) Priority() int {
	return constant.PriorityAbility
}

func (s *AbilitySystem) Update(st *engine.State, _ time.Duration) {
	pressed := st.Input.Pressed(st.PrevInput, input.SignalAbility)
	queued := st.AbilityQueued
	st.AbilityQueued = false
	if !pressed && !queued {
		return
	}

	outcome := ability.Trigger(st)
	if outcome == ability.OutcomeIgnored {
		return
	}
	st.Stats.Inc(status.KeyAbilities)
	st.Options.Logger.Info("ability used",
		"character", st.Character.ID,
		"ability", st.Character.Ability.String(),
		"outcome", outcome.String(),
		"run_clock", st.RunClock,
	)
}

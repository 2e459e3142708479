package engine

import (
	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/input"
	"github.com/lixenwraith/super-dash/navigation"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/vmath"
)

// Bot drives a run headlessly by translating autopilot steering into held signals
type Bot struct {
	// UseAbility pulses the ability signal whenever the cooldown is clear
	UseAbility bool

	pulse bool
}

// Input returns the signals for the next tick
func (b *Bot) Input(s *State) input.State {
	var in input.State
	if s.Character == nil {
		return in
	}

	target, ok := NearestCoin(s)
	steer := navigation.Steer(s.Layout, s.Player.Position, s.Player.Heading, target, ok, s.TurnRate())

	deadband := s.TurnRate() / 2
	switch {
	case steer.Bias > deadband:
		in = in.With(input.SignalRight)
	case steer.Bias < -deadband:
		in = in.With(input.SignalLeft)
	}
	if !steer.Brake {
		in = in.With(input.SignalUp)
		if s.Player.BoostFuel > parameter.AutoBoostFuelThreshold {
			in = in.With(input.SignalBoost)
		}
	}

	// Rising edge needs a released tick between presses
	if b.UseAbility && !s.Effects.Active(component.EffectAbilityCooldown) && !s.AbilityBusy() {
		b.pulse = !b.pulse
		in = in.Set(input.SignalAbility, b.pulse)
	}
	return in
}

// NearestCoin returns the closest uncollected coin position
func NearestCoin(s *State) (vmath.Vec2, bool) {
	idx := navigation.Nearest(s.Player.Position, len(s.Coins), func(i int) (vmath.Vec2, bool) {
		return s.Coins[i].Position, !s.Coins[i].Collected
	})
	if idx < 0 {
		return vmath.Vec2{}, false
	}
	return s.Coins[idx].Position, true
}

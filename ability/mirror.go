package ability

import (
	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/event"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/vmath"
)

// cloneOffsets are lateral multiples of MirrorCloneSpacing
var cloneOffsets = [parameter.MirrorMaxClones]float64{-2, -1, 1, 2}

// Mirror freezes the player, spawns clones, then sweeps them forward
// Cooldown is armed by State.EndMirror when the effect expires
type Mirror struct{}

func (Mirror) Kind() component.AbilityKind { return component.AbilityMirror }

func (Mirror) Activate(s *engine.State) Outcome {
	s.Player.Speed = 0
	s.Player.Heading = parameter.MirrorHeading

	lateral := vmath.FromAngle(parameter.MirrorHeading).Perpendicular()
	clones := make([]component.Clone, 0, len(cloneOffsets))
	for _, k := range cloneOffsets {
		p := s.Player.Position.Add(lateral.Scale(k * parameter.MirrorCloneSpacing))
		if !s.Layout.Contains(p) {
			continue
		}
		clones = append(clones, component.Clone{Position: p})
	}

	s.Mirror = engine.MirrorState{
		Active:   true,
		Clones:   clones,
		DashTask: s.Timeline.Schedule(event.TaskMirrorDash, s.SimTime+parameter.MirrorDashDelay, 0),
	}
	s.Effects.ArmDefault(component.EffectMirror)
	announce(s, "MIRROR RUSH!")
	return OutcomeActivated
}

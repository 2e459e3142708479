package component

import (
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/vmath"
)

// Player is the single vehicle's kinematic state
// Heading is unbounded radians; Speed is signed along the heading
type Player struct {
	Position  vmath.Vec2
	Heading   float64
	Speed     float64
	BoostFuel float64
}

// NewPlayer places a stationary, fully fueled vehicle at pos facing up
func NewPlayer(pos vmath.Vec2) Player {
	return Player{
		Position:  pos,
		Heading:   parameter.StartHeading,
		BoostFuel: parameter.MaxBoost,
	}
}

// AddFuel adds delta to boost fuel clamped to [0, MaxBoost]
func (p *Player) AddFuel(delta float64) {
	p.BoostFuel = vmath.Clamp(p.BoostFuel+delta, 0, parameter.MaxBoost)
}

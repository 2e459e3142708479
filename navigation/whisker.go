package navigation

import (
	"math"

	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/vmath"
	"github.com/lixenwraith/super-dash/world"
)

// Probes holds the three whisker hit results for one tick
type Probes struct {
	Ahead bool
	Left  bool
	Right bool
}

// Steering is the autopilot decision for one tick
type Steering struct {
	Bias   float64 // Heading delta in radians, clamped to ±MaxTurnBiasFactor×turn
	Brake  bool    // Reduce forward accel and suppress auto-boost
	Probes Probes
}

// CastWhiskers probes the layout at fixed look-ahead ahead and to each side of heading
// Left is the counter-clockwise side in screen coordinates (heading - angle)
func CastWhiskers(layout *world.Layout, pos vmath.Vec2, heading float64) Probes {
	probe := func(angle, padding float64) bool {
		p := pos.Add(vmath.FromAngle(angle).Scale(parameter.WhiskerLookAhead))
		return layout.IsInsideAnyObstacle(p, padding)
	}
	return Probes{
		Ahead: probe(heading, parameter.WhiskerAheadPadding),
		Left:  probe(heading-parameter.WhiskerSideAngle, parameter.WhiskerSidePadding),
		Right: probe(heading+parameter.WhiskerSideAngle, parameter.WhiskerSidePadding),
	}
}

// Nearest returns the index of the closest candidate to pos, -1 when none qualify
func Nearest(pos vmath.Vec2, n int, at func(i int) (vmath.Vec2, bool)) int {
	best := -1
	bestSq := math.Inf(1)
	for i := 0; i < n; i++ {
		p, ok := at(i)
		if !ok {
			continue
		}
		if d := pos.Sub(p).LenSq(); d < bestSq {
			bestSq = d
			best = i
		}
	}
	return best
}

// Steer blends obstacle avoidance with seeking target
// turn is the effective per-tick turn rate of the vehicle
func Steer(layout *world.Layout, pos vmath.Vec2, heading float64, target vmath.Vec2, hasTarget bool, turn float64) Steering {
	probes := CastWhiskers(layout, pos, heading)
	s := Steering{Probes: probes}

	var avoid float64
	switch {
	case probes.Ahead && probes.Left && !probes.Right:
		avoid = turn * parameter.AvoidTurnFactor
	case probes.Ahead && probes.Right && !probes.Left:
		avoid = -turn * parameter.AvoidTurnFactor
	case probes.Ahead:
		avoid = turn * parameter.PanicTurnFactor
	case probes.Left && !probes.Right:
		avoid = turn * parameter.SideNudgeFactor
	case probes.Right && !probes.Left:
		avoid = -turn * parameter.SideNudgeFactor
	}

	var seek, bearingErr float64
	if hasTarget {
		bearingErr = vmath.WrapAngle(vmath.AngleTo(pos, target) - heading)
		gain := parameter.SeekGain
		if avoid != 0 {
			gain *= parameter.SeekGainWhileAvoiding
		}
		seek = bearingErr * gain
	}

	limit := turn * parameter.MaxTurnBiasFactor
	s.Bias = vmath.Clamp(avoid+seek, -limit, limit)
	s.Brake = probes.Ahead || math.Abs(bearingErr) > math.Pi/2
	return s
}

package system

import (
	"math"
	"time"

	"github.com/lixenwraith/super-dash/constant"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/input"
	"github.com/lixenwraith/super-dash/navigation"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/status"
	"github.com/lixenwraith/super-dash/vmath"
)

// MotionSystem chooses the steering source, applies throttle and boost, and integrates
// Kinematics are per tick; dt is consumed only by timers
type MotionSystem struct{}

func NewMotionSystem() engine.System {
	return &MotionSystem{}
}

func (s *MotionSystem) Name() string {
	return "motion"
}

func (s *MotionSystem) Priority() int {
	return constant.PriorityMotion
}

func (s *MotionSystem) Update(st *engine.State, _ time.Duration) {
	if st.Selecting() {
		return
	}
	if st.Mirror.Active {
		s.mirror(st)
		return
	}

	p := &st.Player
	turn := st.TurnRate()
	mult := st.SpeedMultiplier()
	accel := parameter.BaseAccel * mult
	maxVel := parameter.BaseMaxVelocity * mult
	boostMult := parameter.BaseBoostPower * st.Character.BoostPowerFactor

	var throttle float64
	autoBoost := false
	if st.Autopilot() {
		steer := AutopilotSteer(st)
		p.Heading += steer.Bias
		if steer.Brake {
			throttle = accel * parameter.BrakeAccelFactor
		} else {
			throttle = accel
			autoBoost = p.BoostFuel > parameter.AutoBoostFuelThreshold
		}
	} else {
		p.Heading += float64(st.Input.Turn()) * turn
		switch st.Input.Forward() {
		case 1:
			throttle = accel
		case -1:
			throttle = -accel * parameter.ReverseAccelFactor
		}
	}

	boosting := (st.Input.Held(input.SignalBoost) || autoBoost) && p.BoostFuel > 0
	if boosting {
		throttle *= boostMult
		p.BoostFuel = math.Max(0, p.BoostFuel-parameter.BoostConsumptionRate)
	} else {
		p.BoostFuel = math.Min(parameter.MaxBoost, p.BoostFuel+parameter.BoostRechargeRate)
	}
	st.Boosting = boosting

	p.Speed = (p.Speed + throttle) * parameter.Friction
	if math.Abs(p.Speed) > maxVel && !boosting && !st.Hyperdrive() {
		p.Speed *= parameter.OverSpeedDecay
	}
	p.Position = p.Position.Add(vmath.FromAngle(p.Heading).Scale(p.Speed))
	st.Stats.Gauge(status.KeyTopSpeed).Max(math.Abs(p.Speed))
}

// mirror holds the player still until the dash, then sweeps player and clones forward
func (s *MotionSystem) mirror(st *engine.State) {
	st.Player.Speed = 0
	if !st.Mirror.Dashing {
		return
	}
	step := vmath.FromAngle(st.Player.Heading).Scale(parameter.MirrorDashSpeed)
	st.Player.Position = st.Player.Position.Add(step)
	for i := range st.Mirror.Clones {
		st.Mirror.Clones[i].Position = st.Mirror.Clones[i].Position.Add(step)
	}
}

// AutopilotSteer seeks the nearest uncollected coin while avoiding obstacles
func AutopilotSteer(st *engine.State) navigation.Steering {
	target, ok := engine.NearestCoin(st)
	return navigation.Steer(st.Layout, st.Player.Position, st.Player.Heading, target, ok, st.TurnRate())
}

package system_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/input"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/system"
	"github.com/lixenwraith/super-dash/vmath"
)

func TestMotionManualThrottle(t *testing.T) {
	_, st := newRun(t, "dash", nil, nil)
	farCoin(st)
	start := st.Player.Position
	st.Input = input.State(0).With(input.SignalUp)

	system.NewMotionSystem().Update(st, frame)

	want := parameter.BaseAccel * st.Character.SpeedFactor * parameter.Friction
	assert.InDelta(t, want, st.Player.Speed, 1e-12)
	assert.InDelta(t, start.X, st.Player.Position.X, 1e-9)
	assert.Less(t, st.Player.Position.Y, start.Y, "start heading points up")
	assert.InDelta(t, parameter.MaxBoost, st.Player.BoostFuel, 1e-12, "regen clamps at max")
}

func TestMotionReverseIsWeaker(t *testing.T) {
	_, st := newRun(t, "dash", nil, nil)
	farCoin(st)
	st.Input = input.State(0).With(input.SignalDown)

	system.NewMotionSystem().Update(st, frame)

	want := -parameter.BaseAccel * parameter.ReverseAccelFactor * st.Character.SpeedFactor * parameter.Friction
	assert.InDelta(t, want, st.Player.Speed, 1e-12)
}

func TestMotionBoostDrainsFuel(t *testing.T) {
	_, st := newRun(t, "dash", nil, nil)
	farCoin(st)
	st.Input = input.State(0).With(input.SignalUp).With(input.SignalBoost)

	system.NewMotionSystem().Update(st, frame)

	c := st.Character
	want := parameter.BaseAccel * c.SpeedFactor * parameter.BaseBoostPower * c.BoostPowerFactor * parameter.Friction
	assert.InDelta(t, want, st.Player.Speed, 1e-12)
	assert.InDelta(t, parameter.MaxBoost-parameter.BoostConsumptionRate, st.Player.BoostFuel, 1e-12)
	assert.True(t, st.Boosting)
}

func TestMotionOverSpeedDecay(t *testing.T) {
	_, st := newRun(t, "dash", nil, nil)
	farCoin(st)
	st.Player.Speed = 100

	system.NewMotionSystem().Update(st, frame)
	assert.InDelta(t, 100*parameter.Friction*parameter.OverSpeedDecay, st.Player.Speed, 1e-9)

	st.Player.Speed = 100
	st.Effects.ArmDefault(component.EffectHyperdrive)
	system.NewMotionSystem().Update(st, frame)
	assert.Greater(t, st.Player.Speed, 100*parameter.Friction*parameter.OverSpeedDecay, "no decay in hyperdrive")
}

func TestMotionSpeedMultipliersStack(t *testing.T) {
	_, st := newRun(t, "fizz", nil, nil)
	st.Effects.ArmDefault(component.EffectCoinBoost)
	st.Effects.ArmDefault(component.EffectSpeedBoost)
	st.Effects.ArmDefault(component.EffectHyperdrive)
	assert.InDelta(t, 1.2*1.5*1.5*3.0, st.SpeedMultiplier(), 1e-9)
}

func TestMotionAutopilotOverridesManualSteering(t *testing.T) {
	_, st := newRun(t, "dash", nil, nil)
	pos := st.Player.Position
	st.Coins = []component.Coin{{ID: 0, Position: pos.Add(vmath.V2(500, -100))}}
	st.Effects.ArmDefault(component.EffectAutoDrive)
	st.Input = input.State(0).With(input.SignalLeft)
	before := st.Player.Heading

	system.NewMotionSystem().Update(st, frame)

	assert.Greater(t, st.Player.Heading, before, "turns clockwise toward the coin despite left input")
	assert.LessOrEqual(t, st.Player.Heading-before, st.TurnRate()*parameter.MaxTurnBiasFactor+1e-12)
	assert.Greater(t, st.Player.Speed, 0.0, "autopilot always throttles forward")
}

func TestMotionAutopilotAutoBoost(t *testing.T) {
	_, st := newRun(t, "dash", nil, nil)
	pos := st.Player.Position
	st.Coins = []component.Coin{{ID: 0, Position: pos.Add(vmath.V2(0, -800))}}
	st.Effects.ArmDefault(component.EffectAutoDrive)

	system.NewMotionSystem().Update(st, frame)
	assert.True(t, st.Boosting)

	st.Player.BoostFuel = parameter.AutoBoostFuelThreshold
	system.NewMotionSystem().Update(st, frame)
	assert.False(t, st.Boosting, "auto-boost needs fuel above threshold")
}

func TestMotionHeadingIsUnbounded(t *testing.T) {
	_, st := newRun(t, "dash", nil, nil)
	farCoin(st)
	st.Input = input.State(0).With(input.SignalRight)
	motion := system.NewMotionSystem()
	for i := 0; i < 400; i++ {
		motion.Update(st, frame)
	}
	assert.Greater(t, st.Player.Heading, parameter.StartHeading+math.Pi)
}

package ability_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/super-dash/ability"
	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/event"
	"github.com/lixenwraith/super-dash/input"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/system"
	"github.com/lixenwraith/super-dash/vmath"
	"github.com/lixenwraith/super-dash/world"
)

const frame = parameter.FrameUpdateInterval

func newRun(t *testing.T, charID string, obstacles ...world.Obstacle) (*engine.Controller, *engine.State) {
	t.Helper()
	opts := engine.DefaultOptions()
	opts.Seed = 7
	opts.SpawnNearPlayerChance = 0
	c := engine.NewControllerWithLayout(opts, world.NewLayout(parameter.WorldSize, obstacles), system.Default()...)
	require.NoError(t, c.Start("Tester", charID))
	for c.Phase() == engine.PhaseTutorial {
		require.NoError(t, c.AdvanceTutorial())
	}
	st := c.State()
	st.Coins = []component.Coin{{ID: 0, Position: vmath.V2(100, 100)}}
	return c, st
}

func cooldown(st *engine.State) bool {
	return st.Effects.Active(component.EffectAbilityCooldown)
}

func TestRegistryCoversEveryKind(t *testing.T) {
	assert.Nil(t, ability.For(component.AbilityNone))
	for k := component.AbilityBurst; k <= component.AbilityMirror; k++ {
		a := ability.For(k)
		require.NotNil(t, a, k.String())
		assert.Equal(t, k, a.Kind())
	}
}

func TestBurst(t *testing.T) {
	c, st := newRun(t, "dash")
	st.Player.BoostFuel = 10

	c.UseAbility()
	c.Tick(frame)

	assert.Equal(t, parameter.MaxBoost, st.Player.BoostFuel)
	assert.Equal(t, parameter.BurstBoostDuration, st.Effects.Remaining(component.EffectCoinBoost))
	assert.Equal(t, parameter.BurstBoostDuration, st.Effects.Remaining(component.EffectSpeedBoost))
	assert.Equal(t, parameter.AbilityCooldown, st.Effects.Remaining(component.EffectAbilityCooldown))
}

func TestActivationIgnoredDuringCooldown(t *testing.T) {
	c, st := newRun(t, "dash")
	c.UseAbility()
	c.Tick(frame)
	require.True(t, cooldown(st))

	st.Player.BoostFuel = 10
	c.UseAbility()
	c.Tick(frame)
	assert.InDelta(t, 10+parameter.BoostRechargeRate, st.Player.BoostFuel, 1e-9, "second burst must not refill")
}

func TestAbilitySignalFiresOnRisingEdge(t *testing.T) {
	c, st := newRun(t, "dash")
	c.SetInput(input.State(0).With(input.SignalAbility))

	c.Tick(frame)
	require.True(t, cooldown(st))

	st.Effects.Clear(component.EffectAbilityCooldown)
	st.Player.BoostFuel = 10
	c.Tick(frame)
	assert.False(t, cooldown(st), "held signal must not re-trigger")

	c.SetInput(0)
	c.Tick(frame)
	c.SetInput(input.State(0).With(input.SignalAbility))
	c.Tick(frame)
	assert.True(t, cooldown(st))
}

func TestPhaseIgnoresObstacles(t *testing.T) {
	obs := world.Obstacle{X: 1900, Y: 1800, Width: 200, Height: 100}
	c, st := newRun(t, "bolt", obs)
	c.UseAbility()
	c.Tick(frame)
	require.Equal(t, parameter.PhaseDuration, st.Effects.Remaining(component.EffectPhase))

	st.Player.Position = vmath.V2(2000, 1850)
	c.Tick(frame)
	assert.Equal(t, vmath.V2(2000, 1850), st.Player.Position)
}

func TestPulseCollectsWithinRadius(t *testing.T) {
	c, st := newRun(t, "sparky")
	pos := st.Player.Position
	st.Coins = []component.Coin{
		{ID: 0, Position: pos.Add(vmath.V2(500, 0))},
		{ID: 1, Position: pos.Add(vmath.V2(0, 590))},
		{ID: 2, Position: pos.Add(vmath.V2(700, 0))},
	}
	st.Player.BoostFuel = 50

	c.UseAbility()
	c.Tick(frame)

	assert.True(t, st.Coins[0].Collected)
	assert.True(t, st.Coins[1].Collected)
	assert.False(t, st.Coins[2].Collected)
	assert.InDelta(t, 50+2*parameter.AbilityCoinFuelRefund+parameter.BoostRechargeRate, st.Player.BoostFuel, 1e-9)
	assert.False(t, st.Effects.Active(component.EffectCoinBoost), "pulse refund does not grant coin boost")
	assert.Equal(t, parameter.PulseDuration, st.Effects.Remaining(component.EffectPulse))
	assert.True(t, cooldown(st))
}

func TestTurboAI(t *testing.T) {
	c, st := newRun(t, "fizz")
	c.UseAbility()
	c.Tick(frame)

	assert.Equal(t, parameter.TurboDuration, st.Effects.Remaining(component.EffectAutoDrive))
	assert.Equal(t, parameter.TurboDuration, st.Effects.Remaining(component.EffectSpeedBoost))
	assert.True(t, st.Autopilot())
}

func TestTeleportRejectionIsIdempotent(t *testing.T) {
	obs := world.Obstacle{X: 500, Y: 500, Width: 200, Height: 200}
	c, st := newRun(t, "warp", obs)
	st.Coins = []component.Coin{
		{ID: 0, Position: vmath.V2(1000, 1000)},
		{ID: 1, Position: vmath.V2(1250, 1200)},
		{ID: 2, Position: vmath.V2(3000, 3000)},
	}

	c.UseAbility()
	c.Tick(frame)
	require.True(t, st.Selecting())
	assert.False(t, cooldown(st), "cooldown waits for a valid target")

	before := st.Player
	for i := 0; i < 3; i++ {
		err := c.SelectTeleportTarget(vmath.V2(600, 600))
		require.ErrorIs(t, err, engine.ErrTargetBlocked)
		assert.Equal(t, before, st.Player)
		assert.False(t, cooldown(st))
		assert.True(t, st.Selecting())
	}
	require.ErrorIs(t, c.SelectTeleportTarget(vmath.V2(680, 480)), engine.ErrTargetBlocked, "padding counts")
	require.ErrorIs(t, c.SelectTeleportTarget(vmath.V2(-1, 50)), engine.ErrTargetOutOfBounds)
	require.ErrorIs(t, c.SelectTeleportTarget(vmath.V2(math.NaN(), 50)), engine.ErrTargetOutOfBounds)

	// Physics is suspended while selecting, timers keep running
	clock := st.RunClock
	c.SetInput(input.State(0).With(input.SignalUp))
	c.Tick(frame)
	assert.Equal(t, before.Position, st.Player.Position)
	assert.Equal(t, clock+frame, st.RunClock)

	require.NoError(t, c.SelectTeleportTarget(vmath.V2(1000, 1000)))
	assert.Equal(t, vmath.V2(1000, 1000), st.Player.Position)
	assert.Zero(t, st.Player.Speed)
	assert.True(t, st.Coins[0].Collected)
	assert.True(t, st.Coins[1].Collected, "inside the sector")
	assert.False(t, st.Coins[2].Collected)
	assert.Equal(t, parameter.AbilityCooldown, st.Effects.Remaining(component.EffectAbilityCooldown))
	assert.False(t, st.Selecting())

	var notices []string
	for _, n := range st.Notifier.Active() {
		if n.Category == event.CategoryTeleport {
			notices = append(notices, n.Text)
		}
	}
	assert.Equal(t, []string{"CHRONO-TELEPORT! +2 COINS"}, notices, "earlier teleport notices replaced")

	assert.ErrorIs(t, c.SelectTeleportTarget(vmath.V2(1000, 1000)), engine.ErrNotSelecting)
}

func TestActivationIgnoredWhileSelecting(t *testing.T) {
	c, st := newRun(t, "warp")
	c.UseAbility()
	c.Tick(frame)
	require.True(t, st.Selecting())

	assert.Equal(t, ability.OutcomeIgnored, ability.Trigger(st))
}

func TestMirrorLifecycle(t *testing.T) {
	c, st := newRun(t, "echo")
	start := st.Player.Position
	clonePath := start.Add(vmath.V2(parameter.MirrorCloneSpacing, -300))
	st.Coins = []component.Coin{
		{ID: 0, Position: vmath.V2(100, 100)},
		{ID: 1, Position: clonePath},
	}
	st.Player.Heading = 1.0

	c.UseAbility()
	c.Tick(frame)
	require.True(t, st.Mirror.Active)
	assert.Len(t, st.Mirror.Clones, parameter.MirrorMaxClones)
	assert.Equal(t, parameter.MirrorHeading, st.Player.Heading)
	assert.Zero(t, st.Player.Speed)
	assert.False(t, cooldown(st), "cooldown waits for the end")

	// Input is suspended until the dash
	c.SetInput(input.State(0).With(input.SignalUp).With(input.SignalBoost))
	ticks := 1
	for !st.Mirror.Dashing {
		require.Less(t, ticks, 100)
		assert.Equal(t, start, st.Player.Position)
		c.Tick(frame)
		ticks++
	}
	assert.GreaterOrEqual(t, st.SimTime, parameter.MirrorDashDelay)

	for st.Mirror.Active {
		require.Less(t, ticks, 400)
		assert.Equal(t, parameter.MirrorHeading, st.Player.Heading)
		c.Tick(frame)
		ticks++
	}

	assert.Empty(t, st.Mirror.Clones, "no residual clones")
	assert.False(t, st.Mirror.Dashing)
	assert.True(t, cooldown(st))
	assert.True(t, st.Coins[1].Collected, "collected by a clone")
	assert.Empty(t, c.View().Clones)
}

func TestMirrorSkipsClonesOutsideWorld(t *testing.T) {
	c, st := newRun(t, "echo")
	st.Player.Position = vmath.V2(200, 2000)

	c.UseAbility()
	c.Tick(frame)
	require.True(t, st.Mirror.Active)
	assert.Len(t, st.Mirror.Clones, 3, "the far-left clone would be off the map")
}

func TestMirrorDashWrapsEdges(t *testing.T) {
	c, st := newRun(t, "echo")
	st.Player.Position = vmath.V2(2000, 60)

	c.UseAbility()
	for !st.Mirror.Dashing {
		c.Tick(frame)
	}
	c.Tick(frame)
	c.Tick(frame)
	assert.Greater(t, st.Player.Position.Y, parameter.WorldSize/2, "wrapped to the bottom edge")
	for _, cl := range st.Mirror.Clones {
		assert.True(t, st.Layout.Contains(cl.Position))
	}
}

package system_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/event"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/system"
	"github.com/lixenwraith/super-dash/vmath"
)

func hitLeftEdge(st *engine.State) {
	st.Player.Position = vmath.V2(-5, 2000)
	st.Player.Speed = 4
	system.NewBoundarySystem().Update(st, frame)
}

func TestBoundaryPenaltyCooldown(t *testing.T) {
	_, st := newRun(t, "dash", nil, nil)
	farCoin(st)

	hitLeftEdge(st)
	assert.Equal(t, parameter.BoundaryPenaltyTime, st.RunClock)
	assert.Equal(t, parameter.BoundaryClampInset, st.Player.Position.X)
	assert.InDelta(t, -2.0, st.Player.Speed, 1e-9)
	assert.True(t, st.BoundaryHit)

	st.SimTime += 2 * time.Second
	hitLeftEdge(st)
	assert.Equal(t, parameter.BoundaryPenaltyTime, st.RunClock, "second hit inside cooldown is free")

	st.SimTime += 2 * time.Second
	hitLeftEdge(st)
	assert.Equal(t, 2*parameter.BoundaryPenaltyTime, st.RunClock)
}

func TestBoundaryShieldBypassesCooldown(t *testing.T) {
	_, st := newRun(t, "dash", nil, nil)
	farCoin(st)

	hitLeftEdge(st)
	require.Equal(t, parameter.BoundaryPenaltyTime, st.RunClock)

	st.Shield = true
	st.SimTime += time.Second
	hitLeftEdge(st)
	assert.False(t, st.Shield, "shield consumed even inside the penalty cooldown")
	assert.Equal(t, parameter.BoundaryPenaltyTime, st.RunClock)
}

func TestBoundaryShieldPreferredOverPenalty(t *testing.T) {
	_, st := newRun(t, "dash", nil, nil)
	farCoin(st)
	st.Shield = true

	hitLeftEdge(st)
	assert.False(t, st.Shield)
	assert.Zero(t, st.RunClock)
	assert.False(t, st.Penalized)
}

func TestBoundaryInvincibleKeepsShield(t *testing.T) {
	for _, k := range []component.EffectKind{component.EffectCoinBoost, component.EffectAutoDrive} {
		_, st := newRun(t, "dash", nil, nil)
		farCoin(st)
		st.Shield = true
		st.Effects.ArmDefault(k)

		hitLeftEdge(st)
		assert.True(t, st.Shield, k.String())
		assert.Zero(t, st.RunClock, k.String())
		assert.Equal(t, parameter.BoundaryClampInset, st.Player.Position.X, "still clamped")
	}
}

func TestBoundaryWrapsUnderHyperdrive(t *testing.T) {
	_, st := newRun(t, "dash", nil, nil)
	farCoin(st)
	st.Effects.ArmDefault(component.EffectHyperdrive)

	hitLeftEdge(st)
	assert.Equal(t, parameter.WorldSize-parameter.BoundaryWrapInset, st.Player.Position.X)
	assert.False(t, st.BoundaryHit)
	assert.Zero(t, st.RunClock)

	st.Player.Position = vmath.V2(2000, parameter.WorldSize+3)
	system.NewBoundarySystem().Update(st, frame)
	assert.Equal(t, parameter.BoundaryWrapInset, st.Player.Position.Y)
}

func TestBoundaryTutorialNotifiesWithoutCharge(t *testing.T) {
	opts := engine.DefaultOptions()
	c := engine.NewController(opts, system.Default()...)
	require.NoError(t, c.Start("Tester", "dash"))
	st := c.State()

	hitLeftEdge(st)
	assert.Zero(t, st.RunClock)
	notes := c.DrainNotifications()
	require.Len(t, notes, 1)
	assert.Equal(t, event.CategoryPenalty, notes[0].Category)
}

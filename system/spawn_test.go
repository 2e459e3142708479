package system_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/event"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/system"
	"github.com/lixenwraith/super-dash/world"
)

func noNearSpawn(o *engine.Options) { o.SpawnNearPlayerChance = 0 }

func TestSpawnOnInterval(t *testing.T) {
	c, st := newRun(t, "dash", nil, noNearSpawn)
	farCoin(st)

	// 7s at 16ms per tick
	ticks(c, 437)
	assert.Empty(t, st.PowerUps)

	ticks(c, 60)
	require.Len(t, st.PowerUps, 1)
	pu := st.PowerUps[0]
	_, err := uuid.Parse(pu.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, component.PowerUpAutoDrive, pu.Kind, "AutoDrive is never in the random pool")
	assert.False(t, st.Layout.IsInsideAnyObstacle(pu.Position, parameter.PowerUpObstaclePadding))
	assert.GreaterOrEqual(t, pu.Position.X, parameter.PowerUpMargin)
	assert.Less(t, pu.Position.X, parameter.WorldSize-parameter.PowerUpMargin)
}

func TestSpawnExhaustionSkipsCycle(t *testing.T) {
	blanket := world.Obstacle{X: 0, Y: 0, Width: parameter.WorldSize, Height: parameter.WorldSize}
	_, st := newRun(t, "dash", []world.Obstacle{blanket}, nil)
	farCoin(st)
	st.SimTime += parameter.PowerUpSpawnInterval + time.Second

	system.NewSpawnSystem().Update(st, frame)
	assert.Empty(t, st.PowerUps)
	assert.Equal(t, st.SimTime, st.LastPowerUpSpawn, "cycle consumed")
}

func TestSpawnAutoDriveAfterUnlock(t *testing.T) {
	c, st := newRun(t, "dash", nil, noNearSpawn)
	farCoin(st)
	spawn := system.NewSpawnSystem()
	c.DrainNotifications()

	st.SimTime += parameter.AutoDriveSpawnInterval + time.Second
	st.LastPowerUpSpawn = st.SimTime
	st.RunClock = parameter.AutoDriveUnlockTime
	spawn.Update(st, frame)
	assert.Empty(t, st.PowerUps, "run clock must exceed the unlock time")

	st.RunClock = parameter.AutoDriveUnlockTime + time.Second
	spawn.Update(st, frame)
	require.Len(t, st.PowerUps, 1)
	assert.Equal(t, component.PowerUpAutoDrive, st.PowerUps[0].Kind)

	notes := c.DrainNotifications()
	require.Len(t, notes, 1)
	assert.Equal(t, event.CategorySpawnAlert, notes[0].Category)
	assert.Equal(t, "AI AUTO-DRIVE SPAWNED!", notes[0].Text)

	// Rate limited to one per interval
	st.SimTime += time.Second
	st.LastPowerUpSpawn = st.SimTime
	spawn.Update(st, frame)
	assert.Len(t, st.PowerUps, 1)
}

func TestSpawnNeverInTutorial(t *testing.T) {
	c := engine.NewController(engine.DefaultOptions(), system.Default()...)
	require.NoError(t, c.Start("Tester", "bolt"))
	ticks(c, 1000)
	st := c.State()
	assert.Empty(t, st.PowerUps)
	assert.Zero(t, st.RunClock)
}

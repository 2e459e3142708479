package system

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/constant"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/event"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/status"
	"github.com/lixenwraith/super-dash/vmath"
)

// SpawnSystem places power-ups on a fixed simulated interval during Playing
type SpawnSystem struct{}

func NewSpawnSystem() engine.System {
	return &SpawnSystem{}
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return constant.PrioritySpawn
}

func (s *SpawnSystem) Update(st *engine.State, _ time.Duration) {
	if st.Phase != engine.PhasePlaying {
		return
	}

	if st.SimTime-st.LastPowerUpSpawn > parameter.PowerUpSpawnInterval {
		kinds := component.RandomPowerUpKinds
		s.spawn(st, kinds[st.RNG.Intn(len(kinds))])
		st.LastPowerUpSpawn = st.SimTime
	}

	if st.RunClock > parameter.AutoDriveUnlockTime && st.SimTime-st.LastAutoDriveSpawn > parameter.AutoDriveSpawnInterval {
		if s.spawn(st, component.PowerUpAutoDrive) {
			st.Notify(event.CategorySpawnAlert, "AI AUTO-DRIVE SPAWNED!", "", parameter.SpawnAlertDuration)
		}
		st.LastAutoDriveSpawn = st.SimTime
	}
}

// spawn places one power-up by rejection sampling; exhaustion skips the cycle
func (s *SpawnSystem) spawn(st *engine.State, kind component.PowerUpKind) bool {
	p, ok := spawnPoint(st)
	if !ok {
		return false
	}
	id, err := uuid.NewRandomFromReader(st.RNG)
	if err != nil {
		st.Options.Logger.Warn("power-up id", "error", err)
		return false
	}
	st.PowerUps = append(st.PowerUps, component.PowerUp{
		ID:        id.String(),
		Position:  p,
		Kind:      kind,
		CreatedAt: st.RunClock,
	})
	st.Stats.Inc(status.KeyPowerUpsSpawned)
	st.Options.Logger.Debug("power-up spawned", "kind", kind.String(), "x", p.X, "y", p.Y)
	return true
}

// spawnPoint draws a free point, optionally biased near the player
func spawnPoint(st *engine.State) (vmath.Vec2, bool) {
	margin := parameter.PowerUpMargin
	r := parameter.SpawnNearPlayerRadius
	for attempt := 0; attempt < parameter.PowerUpMaxAttempts; attempt++ {
		var p vmath.Vec2
		if st.RNG.Chance(st.Options.SpawnNearPlayerChance) {
			offset := vmath.V2(st.RNG.Range(-r, r), st.RNG.Range(-r, r))
			p = st.Layout.Clamp(st.Player.Position.Add(offset), margin)
		} else {
			p = st.Layout.RandomPoint(st.RNG, margin)
		}
		if !st.Layout.IsInsideAnyObstacle(p, parameter.PowerUpObstaclePadding) {
			return p, true
		}
	}
	return vmath.Vec2{}, false
}

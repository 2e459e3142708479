package ability

import (
	"fmt"
	"math"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/event"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/status"
	"github.com/lixenwraith/super-dash/vmath"
)

// Teleport opens a target selection; the cooldown waits for a valid target
type Teleport struct{}

func (Teleport) Kind() component.AbilityKind { return component.AbilityTeleport }

func (Teleport) Activate(s *engine.State) Outcome {
	s.Targeting = teleportTarget{}
	s.Notify(event.CategoryTeleport, "SELECT A TELEPORT TARGET", "", parameter.AbilityNoticeDuration)
	return OutcomePending
}

type teleportTarget struct{}

// Select relocates the player and sweeps the destination sector
func (teleportTarget) Select(s *engine.State, target vmath.Vec2) error {
	// Each outcome replaces the previous teleport notice
	s.Notifier.ClearCategory(event.CategoryTeleport)
	if !target.Finite() || !s.Layout.Contains(target) {
		s.Notify(event.CategoryTeleport, "TARGET OUTSIDE THE MAP!", "", parameter.AbilityNoticeDuration)
		return fmt.Errorf("%w: (%.0f, %.0f)", engine.ErrTargetOutOfBounds, target.X, target.Y)
	}
	if s.Layout.IsInsideAnyObstacle(target, parameter.TeleportObstaclePadding) {
		s.Notify(event.CategoryTeleport, "CANNOT TELEPORT INTO OBSTACLES!", "", parameter.AbilityNoticeDuration)
		return fmt.Errorf("%w: (%.0f, %.0f)", engine.ErrTargetBlocked, target.X, target.Y)
	}

	s.Player.Position = target
	s.Player.Speed = 0
	clear(s.PassThrough)

	n := CollectSector(s, target)
	armCooldown(s)
	s.Stats.Inc(status.KeyTeleports)
	s.Notify(event.CategoryTeleport, fmt.Sprintf("CHRONO-TELEPORT! +%d COINS", n), "", parameter.AbilityNoticeDuration)
	return nil
}

// CollectSector collects uncollected coins in the square sector centered on p
func CollectSector(s *engine.State, p vmath.Vec2) int {
	half := s.Layout.SectorSize() / 2
	n := 0
	for i := range s.Coins {
		c := s.Coins[i].Position
		if math.Abs(c.X-p.X) > half || math.Abs(c.Y-p.Y) > half {
			continue
		}
		if s.CollectCoin(i, parameter.AbilityCoinFuelRefund, false) {
			n++
		}
	}
	return n
}

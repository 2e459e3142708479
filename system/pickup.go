package system

import (
	"math"
	"time"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/constant"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/status"
	"github.com/lixenwraith/super-dash/vmath"
)

// PickupSystem resolves power-up pickups, then coin pickups
type PickupSystem struct{}

func NewPickupSystem() engine.System {
	return &PickupSystem{}
}

func (s *PickupSystem) Name() string {
	return "pickup"
}

func (s *PickupSystem) Priority() int {
	return constant.PriorityPickup
}

func (s *PickupSystem) Update(st *engine.State, _ time.Duration) {
	if st.Selecting() {
		return
	}
	s.powerUps(st)
	s.coins(st)
}

func (s *PickupSystem) powerUps(st *engine.State) {
	kept := st.PowerUps[:0]
	for _, pu := range st.PowerUps {
		if !st.Player.Position.Within(pu.Position, parameter.PowerUpPickupRadius) {
			kept = append(kept, pu)
			continue
		}
		Apply(st, pu.Kind)
		st.Stats.Inc(status.KeyPowerUpsTaken)
	}
	st.PowerUps = kept
}

// Apply grants a power-up's effect
func Apply(st *engine.State, kind component.PowerUpKind) {
	switch kind {
	case component.PowerUpSpeed:
		st.Effects.ArmDefault(component.EffectSpeedBoost)
		st.HyperRollEligible = true
	case component.PowerUpShield:
		st.Shield = true
	case component.PowerUpMagnet:
		st.Effects.ArmDefault(component.EffectMagnet)
	case component.PowerUpAutoDrive:
		st.Effects.ArmDefault(component.EffectAutoDrive)
	case component.PowerUpSeeThrough:
		st.SeeThrough = true
	}
}

func (s *PickupSystem) coins(st *engine.State) {
	radius := CoinRadius(st)
	points := []vmath.Vec2{st.Player.Position}
	if st.Mirror.Dashing {
		points = st.MirrorPoints()
	}

	for i := range st.Coins {
		if st.Coins[i].Collected {
			continue
		}
		for _, p := range points {
			if p.Within(st.Coins[i].Position, radius) {
				st.CollectCoin(i, parameter.CoinFuelRefund, true)
				break
			}
		}
	}
}

// CoinRadius is the largest applicable pickup radius
func CoinRadius(st *engine.State) float64 {
	r := parameter.CoinPickupRadius
	if st.Effects.Active(component.EffectMagnet) {
		r = math.Max(r, parameter.MagnetPickupRadius)
	}
	if st.Hyperdrive() {
		r = math.Max(r, parameter.HyperPickupRadius)
	}
	return r
}

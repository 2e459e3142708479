package system

import (
	"time"

	"github.com/lixenwraith/super-dash/constant"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/event"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/status"
	"github.com/lixenwraith/super-dash/vmath"
)

// BoundarySystem wraps or clamps at world edges and applies the edge penalty
type BoundarySystem struct{}

func NewBoundarySystem() engine.System {
	return &BoundarySystem{}
}

func (s *BoundarySystem) Name() string {
	return "boundary"
}

func (s *BoundarySystem) Priority() int {
	return constant.PriorityBoundary
}

func (s *BoundarySystem) Update(st *engine.State, _ time.Duration) {
	if st.Selecting() {
		return
	}
	size := st.Layout.Size

	if st.Wrapping() {
		st.Player.Position = Wrap(st.Player.Position, size)
		for i := range st.Mirror.Clones {
			st.Mirror.Clones[i].Position = Wrap(st.Mirror.Clones[i].Position, size)
		}
		return
	}

	pos, hit := ClampToWorld(st.Player.Position, size)
	if !hit {
		return
	}
	st.Player.Position = pos
	st.BoundaryHit = true

	if st.Invincible() {
		return
	}
	// Shield is checked before the penalty cooldown
	if st.Shield {
		st.Shield = false
		st.Player.Speed *= parameter.BoundaryBounce
		st.Stats.Inc(status.KeyShieldSaves)
		return
	}
	if st.Penalized && st.SimTime-st.LastPenaltyAt <= parameter.BoundaryPenaltyCooldown {
		return
	}

	if st.Phase == engine.PhasePlaying {
		st.RunClock += parameter.BoundaryPenaltyTime
	}
	st.LastPenaltyAt = st.SimTime
	st.Penalized = true
	st.Stats.Inc(status.KeyPenalties)
	st.Player.Speed *= parameter.BoundaryBounce
	st.Notify(event.CategoryPenalty, "+10s PENALTY! STAY IN BOUNDS", "", parameter.PenaltyNoticeDuration)
}

// Wrap teleports a point past any edge to just inside the opposite edge
func Wrap(p vmath.Vec2, size float64) vmath.Vec2 {
	inset := parameter.BoundaryWrapInset
	switch {
	case p.X < 0:
		p.X = size - inset
	case p.X > size:
		p.X = inset
	}
	switch {
	case p.Y < 0:
		p.Y = size - inset
	case p.Y > size:
		p.Y = inset
	}
	return p
}

// ClampToWorld pulls a point past any edge just inside it and reports the hit
func ClampToWorld(p vmath.Vec2, size float64) (vmath.Vec2, bool) {
	inset := parameter.BoundaryClampInset
	hit := false
	switch {
	case p.X < 0:
		p.X, hit = inset, true
	case p.X > size:
		p.X, hit = size-inset, true
	}
	switch {
	case p.Y < 0:
		p.Y, hit = inset, true
	case p.Y > size:
		p.Y, hit = size-inset, true
	}
	return p, hit
}

package navigation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/vmath"
	"github.com/lixenwraith/super-dash/world"
)

const turn = parameter.BaseTurnRate

func TestSteerSeeksTargetInOpenField(t *testing.T) {
	layout := world.NewLayout(4000, nil)
	pos := vmath.V2(1000, 1000)

	// Target slightly clockwise of heading 0
	s := Steer(layout, pos, 0, vmath.V2(1500, 1100), true, turn)
	assert.Greater(t, s.Bias, 0.0)
	assert.False(t, s.Brake)
	assert.False(t, s.Probes.Ahead)
}

func TestSteerBrakesWhenTargetBehind(t *testing.T) {
	layout := world.NewLayout(4000, nil)
	s := Steer(layout, vmath.V2(1000, 1000), 0, vmath.V2(500, 1000), true, turn)
	assert.True(t, s.Brake)
	assert.LessOrEqual(t, math.Abs(s.Bias), turn*parameter.MaxTurnBiasFactor+1e-12)
}

func TestSteerPanicTurnsOnBlockedAhead(t *testing.T) {
	// Obstacle dead ahead, wide enough to catch all three whiskers
	layout := world.NewLayout(4000, []world.Obstacle{
		{X: 1100, Y: 700, Width: 200, Height: 600, Kind: world.ObstacleRock},
	})
	s := Steer(layout, vmath.V2(1000, 1000), 0, vmath.V2(1000, 1000), false, turn)
	assert.True(t, s.Probes.Ahead)
	assert.True(t, s.Brake)
	assert.InDelta(t, turn*parameter.PanicTurnFactor, s.Bias, 1e-12)
}

func TestSteerDodgesAwayFromBlockedSide(t *testing.T) {
	// Ahead and left (negative y, counter-clockwise) blocked, right free
	layout := world.NewLayout(4000, []world.Obstacle{
		{X: 1080, Y: 800, Width: 120, Height: 190, Kind: world.ObstacleTree},
	})
	pos := vmath.V2(1000, 1000)
	p := CastWhiskers(layout, pos, 0)
	assert.True(t, p.Ahead)
	assert.True(t, p.Left)
	assert.False(t, p.Right)

	s := Steer(layout, pos, 0, vmath.Vec2{}, false, turn)
	assert.InDelta(t, turn*parameter.AvoidTurnFactor, s.Bias, 1e-12)
}

func TestNearestSkipsIneligible(t *testing.T) {
	pts := []vmath.Vec2{vmath.V2(1, 0), vmath.V2(5, 0), vmath.V2(3, 0)}
	skip := map[int]bool{0: true}
	idx := Nearest(vmath.Vec2{}, len(pts), func(i int) (vmath.Vec2, bool) {
		return pts[i], !skip[i]
	})
	assert.Equal(t, 2, idx)

	none := Nearest(vmath.Vec2{}, len(pts), func(int) (vmath.Vec2, bool) { return vmath.Vec2{}, false })
	assert.Equal(t, -1, none)
}

package system

import (
	"math"
	"time"

	"github.com/lixenwraith/super-dash/constant"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/status"
	"github.com/lixenwraith/super-dash/vmath"
	"github.com/lixenwraith/super-dash/world"
)

// CollisionSystem pushes the player out of obstacles and bounces it
// Skipped entirely under hyperdrive, phasing or Mirror
type CollisionSystem struct{}

func NewCollisionSystem() engine.System {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return constant.PriorityCollision
}

func (s *CollisionSystem) Update(st *engine.State, _ time.Duration) {
	if st.Selecting() {
		return
	}
	obstacles := st.Layout.Obstacles
	r := parameter.PlayerRadius

	// Pass-through resumes normal collision only after the player fully exits
	for idx := range st.PassThrough {
		if !obstacles[idx].ContainsStrict(st.Player.Position, r) {
			delete(st.PassThrough, idx)
		}
	}

	if st.CollisionsDisabled() {
		return
	}

	for i := range obstacles {
		if !obstacles[i].ContainsStrict(st.Player.Position, r) || st.PassThrough[i] {
			continue
		}
		if st.SeeThrough {
			st.SeeThrough = false
			st.PassThrough[i] = true
			st.Stats.Inc(status.KeyPassThroughs)
			continue
		}
		normal := Resolve(&st.Player.Position, obstacles[i], r, st.Layout.Size)
		st.Player.Speed *= parameter.CollisionBounce
		st.Player.Heading = normal + (st.RNG.Float64()-0.5)*parameter.CollisionJitter
		st.Stats.Inc(status.KeyCollisions)
	}
}

// pushEdge is one candidate side of a padded rectangle for collision response
type pushEdge struct {
	dist   float64
	target float64
	normal float64
	alongX bool
}

// Resolve moves p onto the nearest edge of the padded rectangle and returns the outward normal angle
// Edges whose target lies outside [0, size] are skipped unless no other edge remains
func Resolve(p *vmath.Vec2, o world.Obstacle, padding, size float64) float64 {
	left, top, right, bottom := o.Padded(padding)
	edges := [4]pushEdge{
		{dist: p.X - left, target: left, normal: math.Pi, alongX: true},
		{dist: right - p.X, target: right, normal: 0, alongX: true},
		{dist: p.Y - top, target: top, normal: -math.Pi / 2},
		{dist: bottom - p.Y, target: bottom, normal: math.Pi / 2},
	}

	pick := func(inWorld bool) int {
		best := -1
		for i, e := range edges {
			if inWorld && (e.target < 0 || e.target > size) {
				continue
			}
			if best < 0 || e.dist < edges[best].dist {
				best = i
			}
		}
		return best
	}
	best := pick(true)
	if best < 0 {
		best = pick(false)
	}

	e := edges[best]
	if e.alongX {
		p.X = e.target
	} else {
		p.Y = e.target
	}
	return e.normal
}

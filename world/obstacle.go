package world

import "github.com/lixenwraith/super-dash/vmath"

// ObstacleKind is cosmetic; collision treats every kind the same
type ObstacleKind uint8

const (
	ObstacleTree ObstacleKind = iota
	ObstacleRock
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleTree:
		return "tree"
	case ObstacleRock:
		return "rock"
	default:
		return "unknown"
	}
}

// Obstacle is a static axis-aligned rectangle, X/Y is the top-left corner
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	Kind          ObstacleKind
}

// Padded returns the rectangle bounds grown by padding on every side
func (o Obstacle) Padded(padding float64) (left, top, right, bottom float64) {
	return o.X - padding, o.Y - padding, o.X + o.Width + padding, o.Y + o.Height + padding
}

// Contains is the inclusive padded containment test used for placement and probes
func (o Obstacle) Contains(p vmath.Vec2, padding float64) bool {
	left, top, right, bottom := o.Padded(padding)
	return p.X >= left && p.X <= right && p.Y >= top && p.Y <= bottom
}

// ContainsStrict excludes the padded boundary itself
// Collision response uses this so a point pushed onto the edge is resolved
func (o Obstacle) ContainsStrict(p vmath.Vec2, padding float64) bool {
	left, top, right, bottom := o.Padded(padding)
	return p.X > left && p.X < right && p.Y > top && p.Y < bottom
}

package world

import (
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/vmath"
)

// Layout is the immutable world: square bounds plus the obstacle set
// Built once per process and shared read-only by every run
type Layout struct {
	Size      float64
	Obstacles []Obstacle
}

// NewLayout wraps an explicit obstacle set, used by tests and fixed maps
func NewLayout(size float64, obstacles []Obstacle) *Layout {
	obs := make([]Obstacle, len(obstacles))
	copy(obs, obstacles)
	return &Layout{Size: size, Obstacles: obs}
}

// Generate builds count random obstacles fully inside the margin of a world of the given size
// Rectangles covering the start point are re-rolled; fewer than count may be placed if attempts run out
func Generate(rng *vmath.FastRand, size float64, count int) *Layout {
	l := &Layout{Size: size, Obstacles: make([]Obstacle, 0, count)}
	start := l.Center()
	span := size - 2*parameter.ObstacleMargin

	for attempts := 0; len(l.Obstacles) < count && attempts < parameter.ObstacleMaxAttempts; attempts++ {
		fx, fy := rng.Float64(), rng.Float64()
		o := Obstacle{
			Width:  parameter.ObstacleMinSize + rng.Float64()*parameter.ObstacleSizeRange,
			Height: parameter.ObstacleMinSize + rng.Float64()*parameter.ObstacleSizeRange,
			Kind:   ObstacleTree,
		}
		// Whole rectangle stays within the margin so no padded edge leaves the world
		o.X = fx*(span-o.Width) + parameter.ObstacleMargin
		o.Y = fy*(span-o.Height) + parameter.ObstacleMargin
		if rng.Float64() > 0.5 {
			o.Kind = ObstacleRock
		}
		if o.Contains(start, parameter.ObstacleStartClearance) {
			continue
		}
		l.Obstacles = append(l.Obstacles, o)
	}
	return l
}

// Center returns the start point of every run
func (l *Layout) Center() vmath.Vec2 {
	return vmath.V2(l.Size/2, l.Size/2)
}

// IsInsideAnyObstacle reports whether p lies within any obstacle grown by padding
// Padding models the vehicle or pickup radius
func (l *Layout) IsInsideAnyObstacle(p vmath.Vec2, padding float64) bool {
	for i := range l.Obstacles {
		if l.Obstacles[i].Contains(p, padding) {
			return true
		}
	}
	return false
}

// Contains reports whether p lies within the world bounds, edges included
func (l *Layout) Contains(p vmath.Vec2) bool {
	return p.X >= 0 && p.X <= l.Size && p.Y >= 0 && p.Y <= l.Size
}

// Clamp limits p to [margin, Size-margin] on both axes
func (l *Layout) Clamp(p vmath.Vec2, margin float64) vmath.Vec2 {
	return vmath.V2(
		vmath.Clamp(p.X, margin, l.Size-margin),
		vmath.Clamp(p.Y, margin, l.Size-margin),
	)
}

// RandomPoint returns a uniform point in [margin, Size-margin) on both axes
func (l *Layout) RandomPoint(rng *vmath.FastRand, margin float64) vmath.Vec2 {
	span := l.Size - 2*margin
	return vmath.V2(rng.Float64()*span+margin, rng.Float64()*span+margin)
}

// SectorSize is the side of one cell of the teleport sector grid
func (l *Layout) SectorSize() float64 {
	return l.Size / parameter.SectorDivisions
}

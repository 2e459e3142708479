package terminal

import (
	"math"

	"github.com/lixenwraith/super-dash/vmath"
)

// cellAspect compensates for terminal cells being about twice as tall as wide
const cellAspect = 2.0

// Camera maps world coordinates onto a cell grid centered on Focus
type Camera struct {
	Focus vmath.Vec2

	// Scale is world units per cell column
	Scale float64

	Width, Height int
}

// ToCell projects p; ok is false when p falls outside the grid
func (c Camera) ToCell(p vmath.Vec2) (x, y int, ok bool) {
	fx := (p.X-c.Focus.X)/c.Scale + float64(c.Width)/2
	fy := (p.Y-c.Focus.Y)/(c.Scale*cellAspect) + float64(c.Height)/2
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	return x, y, x >= 0 && y >= 0 && x < c.Width && y < c.Height
}

// ToWorld returns the world point at the center of cell (x, y)
func (c Camera) ToWorld(x, y int) vmath.Vec2 {
	return vmath.V2(
		(float64(x)-float64(c.Width)/2+0.5)*c.Scale+c.Focus.X,
		(float64(y)-float64(c.Height)/2+0.5)*c.Scale*cellAspect+c.Focus.Y,
	)
}

// Overview returns a camera framing the whole square world of side size
func Overview(size float64, width, height int) Camera {
	sx := size / float64(max(width, 1))
	sy := size / (float64(max(height, 1)) * cellAspect)
	return Camera{
		Focus:  vmath.V2(size/2, size/2),
		Scale:  math.Max(sx, sy),
		Width:  width,
		Height: height,
	}
}

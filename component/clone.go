package component

import "github.com/lixenwraith/super-dash/vmath"

// Clone is a Mirror ghost, alive only while the ability runs
type Clone struct {
	Position vmath.Vec2
}

package component

import (
	"time"

	"github.com/lixenwraith/super-dash/vmath"
)

// PowerUpKind enumerates pickup types
type PowerUpKind uint8

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpShield
	PowerUpMagnet
	PowerUpAutoDrive
	PowerUpSeeThrough
)

// RandomPowerUpKinds is the uniform spawn pool; AutoDrive is only force-spawned
var RandomPowerUpKinds = []PowerUpKind{
	PowerUpSpeed,
	PowerUpShield,
	PowerUpMagnet,
	PowerUpSeeThrough,
}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "speed"
	case PowerUpShield:
		return "shield"
	case PowerUpMagnet:
		return "magnet"
	case PowerUpAutoDrive:
		return "auto_drive"
	case PowerUpSeeThrough:
		return "see_through"
	default:
		return "unknown"
	}
}

// PowerUp is ephemeral: removed from the active set on pickup
// CreatedAt is simulated time since run start
type PowerUp struct {
	ID        string
	Position  vmath.Vec2
	Kind      PowerUpKind
	CreatedAt time.Duration
}

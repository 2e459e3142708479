package component

import (
	"time"

	"github.com/lixenwraith/super-dash/parameter"
)

// EffectKind indexes the countdown table
type EffectKind uint8

const (
	EffectCoinBoost EffectKind = iota
	EffectSpeedBoost
	EffectMagnet
	EffectAutoDrive
	EffectHyperdrive
	EffectAbilityCooldown
	EffectPulse
	EffectMirror
	EffectPhase

	EffectCount
)

// EffectSpec is the static table row for one effect
type EffectSpec struct {
	Name      string
	Duration  time.Duration // Default arm duration
	SpeedMult float64       // Multiplier while active, 1 = none
}

// EffectTable holds defaults and gameplay multipliers, indexed by EffectKind
var EffectTable = [EffectCount]EffectSpec{
	EffectCoinBoost:       {Name: "coin_boost", Duration: parameter.CoinBoostDuration, SpeedMult: parameter.CoinBoostSpeedMult},
	EffectSpeedBoost:      {Name: "speed_boost", Duration: parameter.SpeedBoostDuration, SpeedMult: parameter.SpeedBoostSpeedMult},
	EffectMagnet:          {Name: "magnet", Duration: parameter.MagnetDuration, SpeedMult: 1},
	EffectAutoDrive:       {Name: "auto_drive", Duration: parameter.AutoDriveDuration, SpeedMult: parameter.AutoDriveSpeedMult},
	EffectHyperdrive:      {Name: "hyperdrive", Duration: parameter.HyperdriveDuration, SpeedMult: parameter.HyperdriveSpeedMult},
	EffectAbilityCooldown: {Name: "ability_cooldown", Duration: parameter.AbilityCooldown, SpeedMult: 1},
	EffectPulse:           {Name: "pulse", Duration: parameter.PulseDuration, SpeedMult: 1},
	EffectMirror:          {Name: "mirror", Duration: parameter.MirrorDuration, SpeedMult: 1},
	EffectPhase:           {Name: "phase", Duration: parameter.PhaseDuration, SpeedMult: 1},
}

func (k EffectKind) String() string {
	if k < EffectCount {
		return EffectTable[k].Name
	}
	return "unknown"
}

// Effects holds the remaining time of every countdown
// Never negative; active iff > 0
type Effects struct {
	remaining [EffectCount]time.Duration
}

// Arm sets the effect to d, replacing any remaining time
func (e *Effects) Arm(k EffectKind, d time.Duration) {
	if d < 0 {
		d = 0
	}
	e.remaining[k] = d
}

// ArmDefault sets the effect to its table duration
func (e *Effects) ArmDefault(k EffectKind) {
	e.Arm(k, EffectTable[k].Duration)
}

// Clear stops the effect immediately
func (e *Effects) Clear(k EffectKind) {
	e.remaining[k] = 0
}

func (e *Effects) Active(k EffectKind) bool {
	return e.remaining[k] > 0
}

func (e *Effects) Remaining(k EffectKind) time.Duration {
	return e.remaining[k]
}

// Tick decrements every active effect by dt, floored at 0
// Returns a bitmask of effects that crossed from active to inactive this tick
func (e *Effects) Tick(dt time.Duration) (expired uint32) {
	if dt <= 0 {
		return 0
	}
	for k := range e.remaining {
		if e.remaining[k] <= 0 {
			continue
		}
		e.remaining[k] -= dt
		if e.remaining[k] <= 0 {
			e.remaining[k] = 0
			expired |= 1 << k
		}
	}
	return expired
}

// Expired tests a Tick result for kind k
func Expired(mask uint32, k EffectKind) bool {
	return mask&(1<<k) != 0
}

// SpeedMultiplier is the product of multipliers of all active effects
func (e *Effects) SpeedMultiplier() float64 {
	m := 1.0
	for k := range e.remaining {
		if e.remaining[k] > 0 {
			m *= EffectTable[k].SpeedMult
		}
	}
	return m
}

// Reset clears every countdown
func (e *Effects) Reset() {
	e.remaining = [EffectCount]time.Duration{}
}

package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/parameter"
)

// Score computes floor(max(0, base - seconds×rate) + collected×perCoin)
func Score(elapsed time.Duration, collected int) int {
	timeScore := math.Max(0, parameter.ScoreBase-elapsed.Seconds()*parameter.ScorePerSecond)
	return int(math.Floor(timeScore + float64(collected)*parameter.ScorePerCoin))
}

// EarnedUnlocks returns the unlock keys a win with this time and character earns
func EarnedUnlocks(elapsed time.Duration, char *component.Character) []string {
	if elapsed >= parameter.UnlockTimeThreshold {
		return nil
	}
	keys := []string{component.UnlockWarp}
	if char != nil && char.Ability == component.AbilityTeleport {
		keys = append(keys, component.UnlockMirror)
	}
	return keys
}

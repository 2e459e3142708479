package system

import (
	"time"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/constant"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/event"
	"github.com/lixenwraith/super-dash/parameter"
)

// WinSystem freezes the result once every coin of a real run is collected
type WinSystem struct{}

func NewWinSystem() engine.System {
	return &WinSystem{}
}

func (s *WinSystem) Name() string {
	return "win"
}

func (s *WinSystem) Priority() int {
	return constant.PriorityWin
}

func (s *WinSystem) Update(st *engine.State, _ time.Duration) {
	if st.Phase != engine.PhasePlaying || st.Result != nil || len(st.Coins) == 0 {
		return
	}
	if st.Uncollected() > 0 {
		return
	}

	collected := len(st.Coins)
	st.Result = &engine.Result{
		PlayerName:  st.PlayerName,
		CharacterID: st.Character.ID,
		Elapsed:     st.RunClock,
		Collected:   collected,
		Score:       engine.Score(st.RunClock, collected),
		Unlocks:     engine.EarnedUnlocks(st.RunClock, st.Character),
	}
	for _, key := range st.Result.Unlocks {
		for _, c := range component.Characters {
			if c.UnlockKey == key {
				st.Notify(event.CategoryUnlock, "UNLOCKED: "+c.Name, "", parameter.UnlockNoticeDuration)
			}
		}
	}
}

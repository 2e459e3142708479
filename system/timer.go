package system

import (
	"time"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/constant"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/event"
	"github.com/lixenwraith/super-dash/parameter"
)

// TimerSystem advances the run clock and every effect countdown
// Expiry this tick stops effects contributing to later systems in the same tick
type TimerSystem struct{}

func NewTimerSystem() engine.System {
	return &TimerSystem{}
}

func (s *TimerSystem) Name() string {
	return "timer"
}

func (s *TimerSystem) Priority() int {
	return constant.PriorityTimer
}

func (s *TimerSystem) Update(st *engine.State, dt time.Duration) {
	if st.Phase == engine.PhasePlaying {
		st.RunClock += dt
	}

	expired := st.Effects.Tick(dt)
	if component.Expired(expired, component.EffectHyperdrive) {
		st.Notify(event.CategoryCutscene, "HYPERDRIVE OFFLINE", event.CutsceneStop, parameter.CutsceneDuration)
	}
	if component.Expired(expired, component.EffectMirror) {
		st.EndMirror()
	}
}

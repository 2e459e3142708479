package system_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/system"
	"github.com/lixenwraith/super-dash/vmath"
	"github.com/lixenwraith/super-dash/world"
)

const frame = parameter.FrameUpdateInterval

// newRun builds a controller on a fixed layout and drives it into Playing
func newRun(t *testing.T, charID string, obstacles []world.Obstacle, tweak func(*engine.Options)) (*engine.Controller, *engine.State) {
	t.Helper()
	opts := engine.DefaultOptions()
	opts.Seed = 42
	if tweak != nil {
		tweak(&opts)
	}
	c := engine.NewControllerWithLayout(opts, world.NewLayout(parameter.WorldSize, obstacles), system.Default()...)
	require.NoError(t, c.Start("Tester", charID))
	for c.Phase() == engine.PhaseTutorial {
		require.NoError(t, c.AdvanceTutorial())
	}
	require.Equal(t, engine.PhasePlaying, c.Phase())
	return c, c.State()
}

// farCoin replaces the batch with one coin away from every test path
func farCoin(st *engine.State) {
	st.Coins = []component.Coin{{ID: 0, Position: vmath.V2(100, 100)}}
}

func ticks(c *engine.Controller, n int) {
	for i := 0; i < n; i++ {
		c.Tick(frame)
	}
}

package engine_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/system"
	"github.com/lixenwraith/super-dash/world"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeRunLifecycleScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type runLifecycleContext struct {
	controller *engine.Controller
	err        error
}

func (rc *runLifecycleContext) reset() {
	rc.controller = nil
	rc.err = nil
}

func InitializeRunLifecycleScenario(ctx *godog.ScenarioContext) {
	rc := &runLifecycleContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		rc.reset()
		return ctx, nil
	})

	ctx.Step(`^a fresh controller with (\d+) coins$`, rc.aFreshControllerWithCoins)
	ctx.Step(`^a run in progress as "([^"]*)" with character "([^"]*)"$`, rc.aRunInProgress)
	ctx.Step(`^I start as "([^"]*)" with character "([^"]*)"$`, rc.iStartAs)
	ctx.Step(`^I begin the real run$`, rc.iBeginTheRealRun)
	ctx.Step(`^I acknowledge all tutorial messages$`, rc.iAcknowledgeAllTutorialMessages)
	ctx.Step(`^I abort the run$`, rc.iAbortTheRun)
	ctx.Step(`^I restart$`, rc.iRestart)
	ctx.Step(`^(\d+) seconds pass$`, rc.secondsPass)
	ctx.Step(`^every coin is collected$`, rc.everyCoinIsCollected)
	ctx.Step(`^every effect is armed$`, rc.everyEffectIsArmed)
	ctx.Step(`^the simulation ticks once$`, rc.theSimulationTicksOnce)
	ctx.Step(`^the command fails with "([^"]*)"$`, rc.theCommandFailsWith)
	ctx.Step(`^the phase is "([^"]*)"$`, rc.thePhaseIs)
	ctx.Step(`^there (?:is|are) (\d+) coins?$`, rc.thereAreCoins)
	ctx.Step(`^the winner is "([^"]*)" with (\d+) coins$`, rc.theWinnerIs)
	ctx.Step(`^the score is (\d+)$`, rc.theScoreIs)
	ctx.Step(`^no effect is active$`, rc.noEffectIsActive)
	ctx.Step(`^the run clock is zero$`, rc.theRunClockIsZero)
}

func (rc *runLifecycleContext) aFreshControllerWithCoins(coins int) error {
	opts := engine.DefaultOptions()
	opts.CoinCount = coins
	opts.SpawnNearPlayerChance = 0
	layout := world.NewLayout(opts.WorldSize, nil)
	rc.controller = engine.NewControllerWithLayout(opts, layout, system.Default()...)
	return nil
}

func (rc *runLifecycleContext) aRunInProgress(name, character string) error {
	if err := rc.controller.Start(name, character); err != nil {
		return err
	}
	return rc.iAcknowledgeAllTutorialMessages()
}

func (rc *runLifecycleContext) iStartAs(name, character string) error {
	rc.err = rc.controller.Start(name, character)
	return nil
}

func (rc *runLifecycleContext) iBeginTheRealRun() error {
	rc.err = rc.controller.BeginRealRun()
	return nil
}

func (rc *runLifecycleContext) iAcknowledgeAllTutorialMessages() error {
	for rc.controller.Phase() == engine.PhaseTutorial {
		if err := rc.controller.AdvanceTutorial(); err != nil {
			return err
		}
	}
	return nil
}

func (rc *runLifecycleContext) iAbortTheRun() error {
	rc.err = rc.controller.Abort()
	return nil
}

func (rc *runLifecycleContext) iRestart() error {
	rc.err = rc.controller.Restart()
	return nil
}

func (rc *runLifecycleContext) secondsPass(seconds int) error {
	// One large tick keeps the player in place while the clock advances
	rc.controller.Tick(time.Duration(seconds) * time.Second)
	return nil
}

func (rc *runLifecycleContext) everyCoinIsCollected() error {
	st := rc.controller.State()
	for i := range st.Coins {
		st.Coins[i].Collected = true
	}
	return nil
}

func (rc *runLifecycleContext) everyEffectIsArmed() error {
	st := rc.controller.State()
	for k := component.EffectKind(0); k < component.EffectCount; k++ {
		st.Effects.ArmDefault(k)
	}
	return nil
}

func (rc *runLifecycleContext) theSimulationTicksOnce() error {
	rc.controller.Tick(0)
	return nil
}

func (rc *runLifecycleContext) theCommandFailsWith(fragment string) error {
	if rc.err == nil {
		return fmt.Errorf("expected error containing %q, got nil", fragment)
	}
	if !strings.Contains(rc.err.Error(), fragment) {
		return fmt.Errorf("expected error containing %q, got %q", fragment, rc.err.Error())
	}
	return nil
}

func (rc *runLifecycleContext) thePhaseIs(want string) error {
	if got := rc.controller.Phase().String(); got != want {
		return fmt.Errorf("expected phase %s, got %s", want, got)
	}
	return nil
}

func (rc *runLifecycleContext) thereAreCoins(want int) error {
	if got := rc.controller.Snapshot().CoinsTotal; got != want {
		return fmt.Errorf("expected %d coins, got %d", want, got)
	}
	return nil
}

func (rc *runLifecycleContext) theWinnerIs(name string, coins int) error {
	res := rc.controller.Snapshot().Result
	if res == nil {
		return fmt.Errorf("no result recorded")
	}
	if res.PlayerName != name || res.Collected != coins {
		return fmt.Errorf("expected %s with %d coins, got %s with %d", name, coins, res.PlayerName, res.Collected)
	}
	return nil
}

func (rc *runLifecycleContext) theScoreIs(want int) error {
	res := rc.controller.Snapshot().Result
	if res == nil {
		return fmt.Errorf("no result recorded")
	}
	if res.Score != want {
		return fmt.Errorf("expected score %d, got %d", want, res.Score)
	}
	return nil
}

func (rc *runLifecycleContext) noEffectIsActive() error {
	st := rc.controller.State()
	for k := component.EffectKind(0); k < component.EffectCount; k++ {
		if st.Effects.Active(k) {
			return fmt.Errorf("effect %s still active", k)
		}
	}
	return nil
}

func (rc *runLifecycleContext) theRunClockIsZero() error {
	if got := rc.controller.Snapshot().Elapsed; got != 0 {
		return fmt.Errorf("expected zero run clock, got %v", got)
	}
	return nil
}

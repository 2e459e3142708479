package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/time/rate"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/engine/fsm"
	"github.com/lixenwraith/super-dash/event"
	"github.com/lixenwraith/super-dash/input"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/status"
	"github.com/lixenwraith/super-dash/vmath"
	"github.com/lixenwraith/super-dash/world"
)

const (
	triggerStart fsm.Trigger = iota
	triggerBegin
	triggerAbort
	triggerRestart
	triggerWin
)

// Controller owns the simulation state and runs the ordered systems
// Not safe for concurrent use: one goroutine drives every method
type Controller struct {
	state   *State
	machine *fsm.Machine[*State]
	systems []System
	log     *slog.Logger

	sink      func(Snapshot)
	sometimes *rate.Sometimes
}

// NewController generates the world from opts.Seed and registers systems in priority order
func NewController(opts Options, systems ...System) *Controller {
	opts = opts.withDefaults()
	rng := vmath.NewFastRand(opts.Seed)
	layout := world.Generate(rng, opts.WorldSize, opts.ObstacleCount)
	return newController(opts, layout, rng, systems)
}

// NewControllerWithLayout uses a fixed obstacle set instead of generating one
func NewControllerWithLayout(opts Options, layout *world.Layout, systems ...System) *Controller {
	opts = opts.withDefaults()
	opts.WorldSize = layout.Size
	return newController(opts, layout, vmath.NewFastRand(opts.Seed), systems)
}

func newController(opts Options, layout *world.Layout, rng *vmath.FastRand, systems []System) *Controller {
	c := &Controller{
		state:     newState(opts, layout, rng),
		systems:   slices.Clone(systems),
		log:       opts.Logger,
		sometimes: &rate.Sometimes{Every: opts.SnapshotEvery},
	}
	slices.SortStableFunc(c.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
	c.machine = c.buildMachine()
	// Initial state is registered above; Init cannot fail
	_ = c.machine.Init(c.state)
	return c
}

func (c *Controller) buildMachine() *fsm.Machine[*State] {
	m := fsm.NewMachine[*State](fsm.StateID(PhaseStart))

	m.AddState(fsm.StateID(PhaseStart), PhaseStart.String(), c.enterStart)
	m.AddState(fsm.StateID(PhaseTutorial), PhaseTutorial.String(), c.enterTutorial)
	m.AddState(fsm.StateID(PhasePlaying), PhasePlaying.String(), c.enterPlaying)
	m.AddState(fsm.StateID(PhaseWon), PhaseWon.String(), c.enterWon)

	link := func(from Phase, trigger fsm.Trigger, to Phase, guard fsm.GuardFunc[*State]) {
		if err := m.AddTransition(fsm.StateID(from), trigger, fsm.StateID(to), guard); err != nil {
			c.log.Error("fsm wiring", "error", err)
		}
	}

	link(PhaseStart, triggerStart, PhaseTutorial, func(s *State) error {
		if s.Character == nil {
			return ErrNoCharacter
		}
		return nil
	})
	link(PhaseTutorial, triggerBegin, PhasePlaying, func(s *State) error {
		if s.TutorialStep < len(TutorialSteps)-1 {
			return fmt.Errorf("%w: step %d of %d", ErrTutorialIncomplete, s.TutorialStep+1, len(TutorialSteps))
		}
		return nil
	})
	link(PhasePlaying, triggerAbort, PhaseStart, nil)
	link(PhasePlaying, triggerWin, PhaseWon, nil)
	for _, p := range []Phase{PhaseStart, PhaseTutorial, PhasePlaying, PhaseWon} {
		link(p, triggerRestart, PhaseStart, nil)
	}
	return m
}

func (c *Controller) enterStart(s *State) {
	s.Phase = PhaseStart
	s.resetRun()
	s.Character = nil
	s.PlayerName = ""
	s.TutorialStep = 0
}

func (c *Controller) enterTutorial(s *State) {
	s.resetRun()
	s.Phase = PhaseTutorial
	s.TutorialStep = 0
	placeTutorialCoin(s)
}

func (c *Controller) enterPlaying(s *State) {
	s.resetRun()
	s.Phase = PhasePlaying
	placeCoins(s, s.Options.CoinCount)
}

func (c *Controller) enterWon(s *State) {
	s.Phase = PhaseWon
	s.Input = 0
}

func (c *Controller) fire(trigger fsm.Trigger, command string) error {
	from := c.state.Phase
	if err := c.machine.Fire(c.state, trigger); err != nil {
		if errors.Is(err, fsm.ErrNoTransition) {
			return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, command, from)
		}
		return fmt.Errorf("%s: %w", command, err)
	}
	c.log.Info("run state changed", "command", command, "from", from.String(), "to", c.state.Phase.String())
	return nil
}

// Start selects the player and character and enters the tutorial
func (c *Controller) Start(name, characterID string) error {
	s := c.state
	if s.Phase != PhaseStart {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, s.Phase)
	}
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n == 0 || n > parameter.MaxNameLength {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	char, ok := component.CharacterByID(characterID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoCharacter, characterID)
	}
	s.PlayerName = name
	s.Character = &char
	return c.fire(triggerStart, "start")
}

// AdvanceTutorial acknowledges the current message; the last acknowledgment begins the run
func (c *Controller) AdvanceTutorial() error {
	s := c.state
	if s.Phase != PhaseTutorial {
		return fmt.Errorf("%w: advance tutorial from %s", ErrInvalidTransition, s.Phase)
	}
	if s.TutorialStep < len(TutorialSteps)-1 {
		s.TutorialStep++
		return nil
	}
	return c.BeginRealRun()
}

// BeginRealRun leaves the tutorial and populates the full coin batch
func (c *Controller) BeginRealRun() error {
	if err := c.fire(triggerBegin, "begin"); err != nil {
		return err
	}
	c.log.Info("run begun", "player", c.state.PlayerName, "character", c.state.Character.ID, "coins", len(c.state.Coins))
	return nil
}

// Respawn recenters the stationary player without ending the run
func (c *Controller) Respawn() error {
	s := c.state
	if !s.Active() {
		return fmt.Errorf("%w: respawn from %s", ErrInvalidTransition, s.Phase)
	}
	shift := s.Layout.Center().Sub(s.Player.Position)
	s.Player.Position = s.Layout.Center()
	s.Player.Speed = 0
	// Clones move with the player so the Mirror formation holds
	for i := range s.Mirror.Clones {
		s.Mirror.Clones[i].Position = s.Mirror.Clones[i].Position.Add(shift)
	}
	clear(s.PassThrough)
	return nil
}

// Abort abandons a run in progress and returns to character selection
func (c *Controller) Abort() error {
	return c.fire(triggerAbort, "abort")
}

// Restart returns to character selection from any state with a full reset
func (c *Controller) Restart() error {
	return c.fire(triggerRestart, "restart")
}

// SetInput replaces the held signal set used by the next tick
func (c *Controller) SetInput(in input.State) {
	c.state.Input = in
}

// UseAbility queues a one-shot activation for the next tick
func (c *Controller) UseAbility() {
	if c.state.Active() {
		c.state.AbilityQueued = true
	}
}

// SelectTeleportTarget resolves an open target selection
// Rejected targets leave the selection open and state unchanged
func (c *Controller) SelectTeleportTarget(target vmath.Vec2) error {
	s := c.state
	if !s.Active() {
		return fmt.Errorf("%w: select target from %s", ErrInvalidTransition, s.Phase)
	}
	if s.Targeting == nil {
		return ErrNotSelecting
	}
	if err := s.Targeting.Select(s, target); err != nil {
		c.log.Debug("target rejected", "x", target.X, "y", target.Y, "error", err)
		return err
	}
	s.Targeting = nil
	c.log.Info("teleported", "x", target.X, "y", target.Y)
	return nil
}

// Tick advances the simulation by dt
// No-op without a character or outside Tutorial and Playing
func (c *Controller) Tick(dt time.Duration) {
	s := c.state
	if !s.Active() {
		return
	}
	if dt < 0 {
		dt = 0
	}

	s.Ticks++
	s.SimTime += dt
	c.runTimeline()

	s.Boosting = false
	s.BoundaryHit = false
	for _, sys := range c.systems {
		sys.Update(s, dt)
	}
	s.PrevInput = s.Input

	if s.Phase == PhasePlaying && s.Result != nil {
		if err := c.fire(triggerWin, "win"); err != nil {
			c.log.Error("win transition", "error", err)
		}
		c.log.Info("run won",
			"player", s.Result.PlayerName,
			"character", s.Result.CharacterID,
			"elapsed", s.Result.Elapsed,
			"score", s.Result.Score,
			"unlocks", s.Result.Unlocks,
		)
		if c.sink != nil {
			c.sink(s.snapshot())
		}
		return
	}

	if c.sink != nil {
		c.sometimes.Do(func() { c.sink(s.snapshot()) })
	}
}

func (c *Controller) runTimeline() {
	s := c.state
	for _, task := range s.Timeline.PopDue(s.SimTime) {
		switch task.Kind {
		case event.TaskClearNotification:
			s.Notifier.Clear(task.Ref)
		case event.TaskMirrorDash:
			if s.Mirror.Active && s.Mirror.DashTask == task.ID {
				s.Mirror.Dashing = true
				s.Mirror.DashTask = 0
			}
		}
	}
}

// SetSnapshotSink registers a receiver called every SnapshotEvery ticks and on win
func (c *Controller) SetSnapshotSink(sink func(Snapshot)) {
	c.sink = sink
}

// Snapshot returns the current summary on demand
func (c *Controller) Snapshot() Snapshot {
	return c.state.snapshot()
}

// View returns copies of the entity sets for rendering
func (c *Controller) View() View {
	return c.state.view()
}

// DrainNotifications returns notifications posted since the last drain
func (c *Controller) DrainNotifications() []event.Notification {
	return c.state.Notifier.Drain()
}

// Metrics samples the current run's counters
func (c *Controller) Metrics() []status.Metric {
	return c.state.Stats.Metrics()
}

// Phase returns the run state
func (c *Controller) Phase() Phase {
	return c.state.Phase
}

// Layout returns the shared world geometry
func (c *Controller) Layout() *world.Layout {
	return c.state.Layout
}

// State exposes the live simulation state to systems wiring and tests
// Callers must stay on the loop goroutine
func (c *Controller) State() *State {
	return c.state
}

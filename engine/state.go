package engine

import (
	"time"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/event"
	"github.com/lixenwraith/super-dash/input"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/status"
	"github.com/lixenwraith/super-dash/vmath"
	"github.com/lixenwraith/super-dash/world"
)

// Phase is the run-level state
type Phase int

const (
	PhaseStart Phase = iota + 1
	PhaseTutorial
	PhasePlaying
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseTutorial:
		return "tutorial"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Targeter resolves the coordinate half of a two-phase ability
type Targeter interface {
	Select(s *State, target vmath.Vec2) error
}

// MirrorState tracks the multi-stage Mirror ability
type MirrorState struct {
	Active   bool
	Dashing  bool
	Clones   []component.Clone
	DashTask uint64 // Timeline task ID of the dash onset
}

// Result is the frozen outcome of a won run
type Result struct {
	PlayerName  string
	CharacterID string
	Elapsed     time.Duration
	Collected   int
	Score       int
	Unlocks     []string
}

// State is the single explicit simulation state owned by the controller
// Systems receive it by pointer inside the tick and nowhere else
type State struct {
	// Process-lifetime collaborators
	Layout   *world.Layout
	RNG      *vmath.FastRand
	Timeline *event.Timeline
	Notifier *event.Notifier
	Stats    *status.Registry
	Options  Options

	Phase        Phase
	PlayerName   string
	Character    *component.Character
	TutorialStep int

	Player   component.Player
	Coins    []component.Coin
	PowerUps []component.PowerUp
	Effects  component.Effects

	// Held-once flags
	Shield            bool
	SeeThrough        bool
	HyperRollEligible bool

	// PassThrough holds obstacle indices currently being crossed on a consumed SeeThrough
	PassThrough map[int]bool

	Mirror    MirrorState
	Targeting Targeter

	// Ability activation requests, consumed by the ability system
	AbilityQueued bool
	Input         input.State
	PrevInput     input.State

	// SimTime advances in every simulated tick and keys the timeline
	SimTime time.Duration
	// RunClock is the player-facing race time, Playing only, penalties included
	RunClock time.Duration

	LastPowerUpSpawn   time.Duration
	LastAutoDriveSpawn time.Duration
	LastPenaltyAt      time.Duration
	Penalized          bool

	// Per-tick scratch
	Boosting    bool
	BoundaryHit bool

	Ticks  uint64
	Result *Result
}

func newState(opts Options, layout *world.Layout, rng *vmath.FastRand) *State {
	s := &State{
		Layout:   layout,
		RNG:      rng,
		Timeline: event.NewTimeline(parameter.TimelineInitialCapacity),
		Notifier: event.NewNotifier(),
		Stats:    status.NewRegistry(),
		Options:  opts,
		Phase:    PhaseStart,
	}
	s.resetRun()
	return s
}

// resetRun restores every timer and flag to its run-start value
// Coins, character and phase are left to the caller
func (s *State) resetRun() {
	s.Player = component.NewPlayer(s.Layout.Center())
	s.Coins = nil
	s.PowerUps = nil
	s.Effects.Reset()

	s.Shield = false
	s.SeeThrough = false
	s.HyperRollEligible = false
	s.PassThrough = make(map[int]bool)

	s.Mirror = MirrorState{}
	s.Targeting = nil

	s.AbilityQueued = false
	s.Input = 0
	s.PrevInput = 0

	s.RunClock = 0
	s.LastPowerUpSpawn = s.SimTime
	s.LastAutoDriveSpawn = s.SimTime
	s.LastPenaltyAt = 0
	s.Penalized = false

	s.Boosting = false
	s.BoundaryHit = false
	s.Result = nil

	s.Timeline.Reset()
	s.Notifier.Reset()
	s.Stats.Reset()
}

// Active reports whether the tick loop advances the world
func (s *State) Active() bool {
	return s.Character != nil && (s.Phase == PhasePlaying || s.Phase == PhaseTutorial)
}

// Selecting reports an open teleport target selection
func (s *State) Selecting() bool {
	return s.Targeting != nil
}

// AbilityBusy reports a selection or multi-phase ability in progress
func (s *State) AbilityBusy() bool {
	return s.Targeting != nil || s.Mirror.Active
}

// Hyperdrive reports an active hyperdrive
func (s *State) Hyperdrive() bool {
	return s.Effects.Active(component.EffectHyperdrive)
}

// Autopilot reports whether steering comes from the autopilot this tick
func (s *State) Autopilot() bool {
	if s.Mirror.Active {
		return false
	}
	return s.Effects.Active(component.EffectAutoDrive) || s.Hyperdrive()
}

// Invincible reports boundary-penalty immunity
func (s *State) Invincible() bool {
	return s.Effects.Active(component.EffectCoinBoost) || s.Effects.Active(component.EffectAutoDrive)
}

// Wrapping reports whether world edges teleport instead of clamping
func (s *State) Wrapping() bool {
	return s.Hyperdrive() || s.Mirror.Dashing
}

// CollisionsDisabled reports whether obstacle response is skipped entirely
func (s *State) CollisionsDisabled() bool {
	return s.Hyperdrive() || s.Effects.Active(component.EffectPhase) || s.Mirror.Active
}

// TurnRate is the effective per-tick heading rate
func (s *State) TurnRate() float64 {
	return parameter.BaseTurnRate * s.Character.HandlingFactor
}

// SpeedMultiplier combines the character factor with active effect bonuses
func (s *State) SpeedMultiplier() float64 {
	return s.Character.SpeedFactor * s.Effects.SpeedMultiplier()
}

// Uncollected returns the number of coins still in play
func (s *State) Uncollected() int {
	return len(s.Coins) - component.CountCollected(s.Coins)
}

// CollectCoin marks coin i collected and applies the refund
// Returns false when the coin was already collected
func (s *State) CollectCoin(i int, refund float64, armBoost bool) bool {
	if s.Coins[i].Collected {
		return false
	}
	s.Coins[i].Collected = true
	s.Stats.Inc(status.KeyCoins)
	s.Player.AddFuel(refund)
	if armBoost {
		s.Effects.ArmDefault(component.EffectCoinBoost)
	}
	return true
}

// Notify posts a notification and schedules its clear task
func (s *State) Notify(cat event.Category, text, cutscene string, lifetime time.Duration) uint64 {
	expires := s.SimTime + lifetime
	id := s.Notifier.Post(cat, text, cutscene, expires)
	s.Timeline.Schedule(event.TaskClearNotification, expires, id)
	return id
}

// EndMirror discards clones and arms the cooldown
func (s *State) EndMirror() {
	if !s.Mirror.Active {
		return
	}
	if s.Mirror.DashTask != 0 {
		s.Timeline.Cancel(s.Mirror.DashTask)
	}
	s.Mirror = MirrorState{}
	s.Effects.Clear(component.EffectMirror)
	s.Effects.ArmDefault(component.EffectAbilityCooldown)
}

// MirrorPoints returns the player position followed by every clone position
func (s *State) MirrorPoints() []vmath.Vec2 {
	pts := make([]vmath.Vec2, 0, 1+len(s.Mirror.Clones))
	pts = append(pts, s.Player.Position)
	for _, c := range s.Mirror.Clones {
		pts = append(pts, c.Position)
	}
	return pts
}

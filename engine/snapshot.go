package engine

import (
	"time"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/event"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/vmath"
	"github.com/lixenwraith/super-dash/world"
)

// Snapshot is the immutable per-frame summary consumed by presentation
type Snapshot struct {
	Tick         uint64
	Phase        Phase
	PlayerName   string
	CharacterID  string
	TutorialStep int
	TutorialText string

	Elapsed        time.Duration
	CoinsCollected int
	CoinsTotal     int

	Fuel    float64
	MaxFuel float64

	// EffectSeconds is the remaining time of every effect, indexed by EffectKind
	EffectSeconds [component.EffectCount]float64

	Shield     bool
	SeeThrough bool

	CooldownSeconds    float64
	CooldownMaxSeconds float64

	Position vmath.Vec2
	Heading  float64
	Speed    float64

	Autopilot     bool
	Selecting     bool
	MirrorActive  bool
	MirrorDashing bool

	Notifications []event.Notification
	Result        *Result
}

// Cutscene returns the active cutscene type, empty when none
func (s Snapshot) Cutscene() string {
	for _, n := range s.Notifications {
		if n.Category == event.CategoryCutscene {
			return n.Cutscene
		}
	}
	return ""
}

// Effect returns the remaining seconds of k
func (s Snapshot) Effect(k component.EffectKind) float64 {
	return s.EffectSeconds[k]
}

func (s *State) snapshot() Snapshot {
	snap := Snapshot{
		Tick:               s.Ticks,
		Phase:              s.Phase,
		PlayerName:         s.PlayerName,
		TutorialStep:       s.TutorialStep,
		Elapsed:            s.RunClock,
		CoinsCollected:     component.CountCollected(s.Coins),
		CoinsTotal:         len(s.Coins),
		Fuel:               s.Player.BoostFuel,
		MaxFuel:            parameter.MaxBoost,
		Shield:             s.Shield,
		SeeThrough:         s.SeeThrough,
		CooldownSeconds:    s.Effects.Remaining(component.EffectAbilityCooldown).Seconds(),
		CooldownMaxSeconds: parameter.AbilityCooldown.Seconds(),
		Position:           s.Player.Position,
		Heading:            s.Player.Heading,
		Speed:              s.Player.Speed,
		Selecting:          s.Selecting(),
		MirrorActive:       s.Mirror.Active,
		MirrorDashing:      s.Mirror.Dashing,
		Notifications:      s.Notifier.Active(),
	}
	if s.Character != nil {
		snap.CharacterID = s.Character.ID
		snap.Autopilot = s.Autopilot()
	}
	if s.Phase == PhaseTutorial && s.TutorialStep < len(TutorialSteps) {
		snap.TutorialText = TutorialSteps[s.TutorialStep]
	}
	for k := component.EffectKind(0); k < component.EffectCount; k++ {
		snap.EffectSeconds[k] = s.Effects.Remaining(k).Seconds()
	}
	if s.Result != nil {
		r := *s.Result
		r.Unlocks = append([]string(nil), s.Result.Unlocks...)
		snap.Result = &r
	}
	return snap
}

// View is a read-only copy of the entity sets for renderers
type View struct {
	Size      float64
	Player    component.Player
	Coins     []component.Coin
	PowerUps  []component.PowerUp
	Clones    []component.Clone
	Obstacles []world.Obstacle
}

func (s *State) view() View {
	return View{
		Size:      s.Layout.Size,
		Player:    s.Player,
		Coins:     append([]component.Coin(nil), s.Coins...),
		PowerUps:  append([]component.PowerUp(nil), s.PowerUps...),
		Clones:    append([]component.Clone(nil), s.Mirror.Clones...),
		Obstacles: append([]world.Obstacle(nil), s.Layout.Obstacles...),
	}
}

package terminal

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/input"
	"github.com/lixenwraith/super-dash/parameter"
	"github.com/lixenwraith/super-dash/storage"
	"github.com/lixenwraith/super-dash/vmath"
)

// AppConfig configures the interactive host
type AppConfig struct {
	PlayerName    string
	FrameInterval time.Duration
	KeyHold       time.Duration

	// Store is optional; without it secret characters stay locked and wins are not kept
	Store  *storage.UnlockStore
	Logger *slog.Logger
}

// App runs one controller against a tcell screen
// All fields are owned by the Run goroutine
type App struct {
	screen   tcell.Screen
	ctrl     *engine.Controller
	renderer *Renderer
	hold     *input.HoldTracker
	store    *storage.UnlockStore
	log      *slog.Logger
	frame    time.Duration
	now      func() time.Time

	name      string
	roster    []component.Character
	selected  int
	cursor    vmath.Vec2
	selecting bool
	status    string
	recorded  bool
	quit      bool
}

func NewApp(ctx context.Context, screen tcell.Screen, ctrl *engine.Controller, cfg AppConfig) *App {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = parameter.FrameUpdateInterval
	}
	if cfg.KeyHold <= 0 {
		cfg.KeyHold = parameter.KeyHoldWindow
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	a := &App{
		screen:   screen,
		ctrl:     ctrl,
		renderer: NewRenderer(screen),
		hold:     input.NewHoldTracker(cfg.KeyHold),
		store:    cfg.Store,
		log:      cfg.Logger,
		frame:    cfg.FrameInterval,
		now:      time.Now,
		name:     cfg.PlayerName,
	}
	ctrl.SetSnapshotSink(func(s engine.Snapshot) { a.recordWin(ctx, s) })
	a.refreshRoster(ctx)
	return a
}

// refreshRoster reloads the selectable characters after unlocks change
func (a *App) refreshRoster(ctx context.Context) {
	a.roster = a.roster[:0]
	if a.store != nil {
		chars, err := a.store.Available(ctx)
		if err == nil {
			a.roster = chars
		} else {
			a.log.Warn("unlock store unavailable", "error", err)
		}
	}
	if len(a.roster) == 0 {
		for _, c := range component.Characters {
			if !c.Secret {
				a.roster = append(a.roster, c)
			}
		}
	}
	a.selected = min(a.selected, len(a.roster)-1)
}

func (a *App) recordWin(ctx context.Context, s engine.Snapshot) {
	if s.Result == nil || a.recorded {
		return
	}
	a.recorded = true
	if a.store == nil {
		return
	}
	if err := a.store.RecordResult(ctx, *s.Result); err != nil {
		a.log.Error("failed to record result", "error", err)
		a.status = "could not save result"
		return
	}
	a.refreshRoster(ctx)
}

// Run drives the frame loop until quit or ctx is done
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	Go(a.screen, func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()
	last := a.now()
	a.draw()

	for !a.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			a.HandleEvent(ctx, ev)
		case t := <-ticker.C:
			dt := t.Sub(last)
			last = t
			a.Step(dt)
		}
	}
	return nil
}

// Step advances one frame with the currently held keys and redraws
func (a *App) Step(dt time.Duration) {
	dt = min(dt, parameter.MaxFrameDelta)
	a.ctrl.SetInput(a.hold.State(a.now()))
	a.ctrl.Tick(dt)

	snap := a.ctrl.Snapshot()
	if snap.Selecting && !a.selecting {
		a.cursor = snap.Position
	}
	a.selecting = snap.Selecting
	a.draw()
}

func (a *App) frameData() Frame {
	return Frame{
		Snapshot:   a.ctrl.Snapshot(),
		View:       a.ctrl.View(),
		PlayerName: a.name,
		Roster:     a.roster,
		Selected:   a.selected,
		Cursor:     a.cursor,
		Status:     a.status,
	}
}

func (a *App) draw() {
	a.renderer.Draw(a.frameData())
}

// Quit reports whether the player asked to leave
func (a *App) Quit() bool {
	return a.quit
}

// HandleEvent applies one terminal event
func (a *App) HandleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		sig, action, ok := MapKey(ev)
		if !ok {
			return
		}
		if action == ActionQuit {
			a.quit = true
			return
		}
		switch a.ctrl.Phase() {
		case engine.PhaseStart:
			a.handleStart(sig, action)
		case engine.PhaseTutorial, engine.PhasePlaying:
			a.handleRun(sig, action)
		case engine.PhaseWon:
			if action == ActionRestart || action == ActionConfirm {
				a.restart(ctx)
			}
		}
	}
}

func (a *App) handleStart(sig input.Signal, action Action) {
	n := len(a.roster)
	switch {
	case action == ActionBack:
		a.quit = true
	case action == ActionConfirm:
		if err := a.ctrl.Start(a.name, a.roster[a.selected].ID); err != nil {
			a.status = err.Error()
			return
		}
		a.status = ""
		a.recorded = false
	case action == ActionNext || (action == ActionNone && sig == input.SignalDown):
		a.selected = (a.selected + 1) % n
	case action == ActionPrev || (action == ActionNone && sig == input.SignalUp):
		a.selected = (a.selected + n - 1) % n
	}
}

func (a *App) handleRun(sig input.Signal, action Action) {
	if a.ctrl.Snapshot().Selecting {
		a.handleTargeting(sig, action)
		return
	}
	switch action {
	case ActionNone:
		// A press ends the opposite direction at once instead of after the hold window
		if opp, ok := input.Opposite(sig); ok {
			a.hold.Release(opp)
		}
		a.hold.Press(sig, a.now())
	case ActionConfirm:
		if a.ctrl.Phase() == engine.PhaseTutorial {
			if err := a.ctrl.AdvanceTutorial(); err != nil {
				a.status = err.Error()
			}
		}
	case ActionRespawn:
		if err := a.ctrl.Respawn(); err != nil {
			a.status = err.Error()
		}
	case ActionBack, ActionRestart:
		a.hold.Reset()
		if err := a.ctrl.Restart(); err != nil {
			a.status = err.Error()
		}
	}
}

func (a *App) handleTargeting(sig input.Signal, action Action) {
	cam := a.renderer.Camera(a.frameData())
	dx, dy := cam.Scale, cam.Scale*cellAspect
	switch action {
	case ActionConfirm:
		if err := a.ctrl.SelectTeleportTarget(a.cursor); err != nil {
			a.status = err.Error()
			return
		}
		a.status = ""
		return
	case ActionNone:
	default:
		return
	}
	switch sig {
	case input.SignalUp:
		a.cursor.Y -= dy
	case input.SignalDown:
		a.cursor.Y += dy
	case input.SignalLeft:
		a.cursor.X -= dx
	case input.SignalRight:
		a.cursor.X += dx
	}
}

func (a *App) restart(ctx context.Context) {
	a.hold.Reset()
	if err := a.ctrl.Restart(); err != nil {
		a.status = err.Error()
		return
	}
	a.status = ""
	a.refreshRoster(ctx)
}

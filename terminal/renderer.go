package terminal

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/event"
	"github.com/lixenwraith/super-dash/vmath"
	"github.com/lixenwraith/super-dash/world"
)

// WorldUnitsPerCell is the chase camera zoom
const WorldUnitsPerCell = 20.0

var (
	styleDefault  = tcell.StyleDefault
	styleOffWorld = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleTree     = tcell.StyleDefault.Foreground(tcell.ColorForestGreen)
	styleRock     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCoin     = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	stylePowerUp  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleClone    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	stylePenalty  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleNotice   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true).Reverse(true)
	styleSelected = tcell.StyleDefault.Reverse(true)
	styleCursor   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true).Blink(true)
)

var headingGlyphs = []rune("→↘↓↙←↖↑↗")

var powerUpGlyphs = map[component.PowerUpKind]rune{
	component.PowerUpSpeed:      'S',
	component.PowerUpShield:     'O',
	component.PowerUpMagnet:     'M',
	component.PowerUpAutoDrive:  'A',
	component.PowerUpSeeThrough: 'G',
}

// Frame is everything one draw needs
type Frame struct {
	Snapshot engine.Snapshot
	View     engine.View

	// Start screen
	PlayerName string
	Roster     []component.Character
	Selected   int

	// Teleport targeting cursor in world coordinates
	Cursor vmath.Vec2

	// Status is the last host-side message, such as a rejected command
	Status string
}

// Renderer draws frames onto a tcell screen
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Camera returns the camera Draw uses for f
// Target selection zooms out to the whole map so any point can be picked
func (r *Renderer) Camera(f Frame) Camera {
	w, h := r.screen.Size()
	rows := max(h-2, 1)
	if f.Snapshot.Selecting {
		return Overview(f.View.Size, w, rows)
	}
	return Camera{Focus: f.Snapshot.Position, Scale: WorldUnitsPerCell, Width: w, Height: rows}
}

func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()
	if f.Snapshot.Phase == engine.PhaseStart {
		r.drawStart(f)
	} else {
		cam := r.Camera(f)
		r.drawWorld(cam, f)
		r.drawHUD(f)
		r.drawFooter(f)
		if f.Snapshot.Cutscene() == event.CutsceneHyper {
			r.drawBanner(">>> HYPERDRIVE ENGAGED <<<")
		}
		if f.Snapshot.Phase == engine.PhaseWon {
			r.drawResult(f)
		}
	}
	r.screen.Show()
}

// put writes to the play area, which starts below the HUD row
func (r *Renderer) put(cam Camera, x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= cam.Width || y >= cam.Height {
		return
	}
	r.screen.SetContent(x, y+1, ch, nil, style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) drawWorld(cam Camera, f Frame) {
	size := f.View.Size
	for y := 0; y < cam.Height; y++ {
		for x := 0; x < cam.Width; x++ {
			p := cam.ToWorld(x, y)
			if p.X < 0 || p.Y < 0 || p.X > size || p.Y > size {
				r.put(cam, x, y, '░', styleOffWorld)
			}
		}
	}

	for _, o := range f.View.Obstacles {
		r.drawObstacle(cam, o)
	}
	for _, c := range f.View.Coins {
		if c.Collected {
			continue
		}
		if x, y, ok := cam.ToCell(c.Position); ok {
			r.put(cam, x, y, '$', styleCoin)
		}
	}
	for _, p := range f.View.PowerUps {
		if x, y, ok := cam.ToCell(p.Position); ok {
			r.put(cam, x, y, powerUpGlyphs[p.Kind], stylePowerUp)
		}
	}
	for _, c := range f.View.Clones {
		if x, y, ok := cam.ToCell(c.Position); ok {
			r.put(cam, x, y, '◆', styleClone)
		}
	}
	if x, y, ok := cam.ToCell(f.View.Player.Position); ok {
		r.put(cam, x, y, HeadingGlyph(f.View.Player.Heading), stylePlayer)
	}
	if f.Snapshot.Selecting {
		if x, y, ok := cam.ToCell(f.Cursor); ok {
			r.put(cam, x, y, '╳', styleCursor)
		}
	}
}

func (r *Renderer) drawObstacle(cam Camera, o world.Obstacle) {
	x0, y0, _ := cam.ToCell(vmath.V2(o.X, o.Y))
	x1, y1, _ := cam.ToCell(vmath.V2(o.X+o.Width, o.Y+o.Height))
	if x1 < 0 || y1 < 0 || x0 >= cam.Width || y0 >= cam.Height {
		return
	}
	ch, style := '♣', styleTree
	if o.Kind == world.ObstacleRock {
		ch, style = '▲', styleRock
	}
	for y := max(y0, 0); y <= min(y1, cam.Height-1); y++ {
		for x := max(x0, 0); x <= min(x1, cam.Width-1); x++ {
			r.put(cam, x, y, ch, style)
		}
	}
}

// HeadingGlyph returns the arrow closest to heading, y grows downward
func HeadingGlyph(heading float64) rune {
	octant := int(math.Round(heading/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return headingGlyphs[octant]
}

func fuelBar(fuel, maxFuel float64, width int) string {
	filled := 0
	if maxFuel > 0 {
		filled = int(math.Round(vmath.Clamp(fuel/maxFuel, 0, 1) * float64(width)))
	}
	return strings.Repeat("█", filled) + strings.Repeat("·", width-filled)
}

// HUDLine formats the status row
func HUDLine(s engine.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, " %s  TIME %5.1fs  COINS %d/%d  FUEL %s",
		s.PlayerName, s.Elapsed.Seconds(), s.CoinsCollected, s.CoinsTotal, fuelBar(s.Fuel, s.MaxFuel, 10))

	if s.CooldownSeconds > 0 {
		fmt.Fprintf(&b, "  ABILITY %2.0fs", math.Ceil(s.CooldownSeconds))
	} else if s.CharacterID != "" {
		b.WriteString("  ABILITY READY")
	}
	if s.Shield {
		b.WriteString("  SHIELD")
	}
	if s.SeeThrough {
		b.WriteString("  GHOST")
	}
	for k := component.EffectKind(0); k < component.EffectCount; k++ {
		if k == component.EffectAbilityCooldown {
			continue
		}
		if sec := s.Effect(k); sec > 0 {
			fmt.Fprintf(&b, "  %s %.1f", strings.ToUpper(component.EffectTable[k].Name), sec)
		}
	}
	if s.Autopilot {
		b.WriteString("  [AUTO]")
	}
	return b.String()
}

func (r *Renderer) drawHUD(f Frame) {
	w, _ := r.screen.Size()
	line := HUDLine(f.Snapshot)
	r.text(0, 0, line+strings.Repeat(" ", max(w-len([]rune(line)), 0)), styleHUD)
}

func (r *Renderer) drawFooter(f Frame) {
	_, h := r.screen.Size()
	y := h - 1
	s := f.Snapshot

	switch {
	case s.Phase == engine.PhaseTutorial:
		r.text(0, y, fmt.Sprintf(" TUTORIAL %d/%d: %s  [Enter]", s.TutorialStep+1, len(engine.TutorialSteps), s.TutorialText), styleNotice)
		return
	case s.Selecting:
		r.text(0, y, " SELECT TELEPORT TARGET: arrows move, Enter confirms", styleNotice)
		return
	}

	x := 1
	for _, n := range s.Notifications {
		if n.Category == event.CategoryCutscene {
			continue
		}
		style := styleNotice
		if n.Category == event.CategoryPenalty {
			style = stylePenalty
		}
		r.text(x, y, n.Text, style)
		x += len([]rune(n.Text)) + 3
	}
	if f.Status != "" {
		r.text(x, y, f.Status, stylePenalty)
	}
}

func (r *Renderer) drawBanner(msg string) {
	w, h := r.screen.Size()
	r.text(max((w-len([]rune(msg)))/2, 0), h/3, msg, styleBanner)
}

func (r *Renderer) drawResult(f Frame) {
	res := f.Snapshot.Result
	if res == nil {
		return
	}
	lines := []string{
		fmt.Sprintf("  %s WINS!  ", res.PlayerName),
		fmt.Sprintf("  Time  %.2fs  ", res.Elapsed.Seconds()),
		fmt.Sprintf("  Coins %d  ", res.Collected),
		fmt.Sprintf("  Score %d  ", res.Score),
	}
	for _, key := range res.Unlocks {
		for _, c := range component.Characters {
			if c.UnlockKey == key {
				lines = append(lines, fmt.Sprintf("  Unlocked %s!  ", c.Name))
			}
		}
	}
	lines = append(lines, "  [N] new run  [Q] quit  ")

	w, h := r.screen.Size()
	top := max((h-len(lines))/2, 1)
	for i, l := range lines {
		r.text(max((w-len([]rune(l)))/2, 0), top+i, l, styleSelected)
	}
}

func (r *Renderer) drawStart(f Frame) {
	r.text(2, 1, "SUPER DASH", styleBanner)
	r.text(2, 3, "Player: "+f.PlayerName, styleDefault)
	r.text(2, 4, "Choose a character (up/down, Enter to start, Q to quit)", styleNotice)

	for i, c := range f.Roster {
		style := styleDefault
		if i == f.Selected {
			style = styleSelected
		}
		r.text(4, 6+i, fmt.Sprintf("%-16s %-10s %s", c.Name, c.AbilityName, c.AbilityDescription), style)
	}
	if f.Status != "" {
		r.text(2, 7+len(f.Roster), f.Status, stylePenalty)
	}
}

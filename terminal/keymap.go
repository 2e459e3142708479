package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/super-dash/input"
)

// Action is a discrete host command, as opposed to a held driving signal
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionConfirm
	ActionBack
	ActionRespawn
	ActionRestart
	ActionNext
	ActionPrev
)

// Key bindings
// Arrows double as cursor keys on the start screen and during teleport targeting
func MapKey(ev *tcell.EventKey) (input.Signal, Action, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return 0, ActionQuit, true
	case tcell.KeyEscape:
		return 0, ActionBack, true
	case tcell.KeyEnter:
		return 0, ActionConfirm, true
	case tcell.KeyTab:
		return 0, ActionNext, true
	case tcell.KeyBacktab:
		return 0, ActionPrev, true
	case tcell.KeyUp:
		return input.SignalUp, ActionNone, true
	case tcell.KeyDown:
		return input.SignalDown, ActionNone, true
	case tcell.KeyLeft:
		return input.SignalLeft, ActionNone, true
	case tcell.KeyRight:
		return input.SignalRight, ActionNone, true
	case tcell.KeyRune:
	default:
		return 0, ActionNone, false
	}

	switch ev.Rune() {
	case 'w', 'W':
		return input.SignalUp, ActionNone, true
	case 's', 'S':
		return input.SignalDown, ActionNone, true
	case 'a', 'A':
		return input.SignalLeft, ActionNone, true
	case 'd', 'D':
		return input.SignalRight, ActionNone, true
	case ' ':
		return input.SignalBoost, ActionNone, true
	case 'e', 'E':
		return input.SignalAbility, ActionNone, true
	case 'r', 'R':
		return 0, ActionRespawn, true
	case 'n', 'N':
		return 0, ActionRestart, true
	case 'q', 'Q':
		return 0, ActionQuit, true
	}
	return 0, ActionNone, false
}

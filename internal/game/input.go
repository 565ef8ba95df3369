package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionQuit
)

// keyToAction maps a tcell key event to a game action. Only the arrow keys
// move; Escape, Ctrl-C and q end the session; everything else is ignored.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

// actionToDelta converts a movement action to (dx, dy). ok is false for
// actions that do not move.
func actionToDelta(a Action) (dx, dy int, ok bool) {
	switch a {
	case ActionMoveN:
		return 0, -1, true
	case ActionMoveS:
		return 0, 1, true
	case ActionMoveE:
		return 1, 0, true
	case ActionMoveW:
		return -1, 0, true
	}
	return 0, 0, false
}

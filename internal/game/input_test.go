package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		name string
		key  tcell.Key
		r    rune
		want Action
	}{
		{"up", tcell.KeyUp, 0, ActionMoveN},
		{"down", tcell.KeyDown, 0, ActionMoveS},
		{"right", tcell.KeyRight, 0, ActionMoveE},
		{"left", tcell.KeyLeft, 0, ActionMoveW},
		{"escape", tcell.KeyEscape, 0, ActionQuit},
		{"ctrl-c", tcell.KeyCtrlC, 0, ActionQuit},
		{"q", tcell.KeyRune, 'q', ActionQuit},
		{"h is not bound", tcell.KeyRune, 'h', ActionNone},
		{"enter", tcell.KeyEnter, 0, ActionNone},
		{"tab", tcell.KeyTab, 0, ActionNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tc.key, tc.r, tcell.ModNone)
			if got := keyToAction(ev); got != tc.want {
				t.Errorf("keyToAction(%v,%q) = %v, want %v", tc.key, tc.r, got, tc.want)
			}
		})
	}
}

func TestActionToDelta(t *testing.T) {
	cases := []struct {
		a      Action
		dx, dy int
		ok     bool
	}{
		{ActionMoveN, 0, -1, true},
		{ActionMoveS, 0, 1, true},
		{ActionMoveE, 1, 0, true},
		{ActionMoveW, -1, 0, true},
		{ActionNone, 0, 0, false},
		{ActionQuit, 0, 0, false},
	}
	for _, tc := range cases {
		dx, dy, ok := actionToDelta(tc.a)
		if dx != tc.dx || dy != tc.dy || ok != tc.ok {
			t.Errorf("actionToDelta(%v) = (%d,%d,%v), want (%d,%d,%v)", tc.a, dx, dy, ok, tc.dx, tc.dy, tc.ok)
		}
	}
}

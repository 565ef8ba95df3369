// Package window runs the game in a desktop window, one ebiten update per tick.
package window

import (
	"bytes"
	"context"
	"fmt"

	"bananalike/internal/game"
	"bananalike/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"
)

// Cell size in pixels.
const (
	cellWidth  = 10
	cellHeight = 16
	fontSize   = 14
)

// keyActions maps the arrow keys to movement.
var keyActions = []struct {
	key    ebiten.Key
	action game.Action
}{
	{ebiten.KeyArrowUp, game.ActionMoveN},
	{ebiten.KeyArrowDown, game.ActionMoveS},
	{ebiten.KeyArrowRight, game.ActionMoveE},
	{ebiten.KeyArrowLeft, game.ActionMoveW},
}

// Window adapts a game.State to ebiten.Game.
type Window struct {
	ctx   context.Context
	state *game.State
	cells *render.Buffer
	face  *text.GoTextFace
}

// New prepares a window for state. It does not open anything until Run.
func New(ctx context.Context, state *game.State) (*Window, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	m := state.Map()
	return &Window{
		ctx:   ctx,
		state: state,
		cells: render.NewBuffer(m.Width, m.Height),
		face:  &text.GoTextFace{Source: src, Size: fontSize},
	}, nil
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func (w *Window) Run() error {
	ebiten.SetWindowTitle(game.Title)
	ebiten.SetWindowSize(w.cells.Width*cellWidth, w.cells.Height*cellHeight)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// Update decodes at most one key press and advances the state by one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || w.ctx.Err() != nil {
		return ebiten.Termination
	}
	action := game.ActionNone
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			action = ka.action
			break
		}
	}
	w.state.Update(w.ctx, action)
	w.state.Draw(w.cells)
	return nil
}

// Draw paints the cell buffer filled by the last Update.
func (w *Window) Draw(screen *ebiten.Image) {
	w.cells.Each(func(x, y int, c render.Cell) {
		px, py := float32(x*cellWidth), float32(y*cellHeight)
		vector.DrawFilledRect(screen, px, py, cellWidth, cellHeight, render.RGBA(c.BG), false)
		if c.Glyph == ' ' {
			return
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(px), float64(py))
		op.ColorScale.ScaleWithColor(render.RGBA(c.FG))
		text.Draw(screen, string(c.Glyph), w.face, op)
	})
}

// Layout keeps the logical screen at exactly one cell per map tile.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.cells.Width * cellWidth, w.cells.Height * cellHeight
}

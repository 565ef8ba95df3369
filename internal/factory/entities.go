package factory

import (
	"bananalike/internal/component"
	"bananalike/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// PlayerGlyph is drawn for every player-tagged entity.
const PlayerGlyph = '@'

// NewPlayer creates a player-controlled entity at (x, y).
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	return w.CreateEntity(
		component.Position{X: x, Y: y},
		component.Renderable{
			Glyph: PlayerGlyph,
			FG:    tcell.ColorYellow,
			BG:    tcell.ColorBlack,
		},
		component.TagPlayer{},
	)
}

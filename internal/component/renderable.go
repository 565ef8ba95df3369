package component

import (
	"bananalike/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 2

type Renderable struct {
	Glyph rune
	FG    tcell.Color
	BG    tcell.Color
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }

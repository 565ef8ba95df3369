package component

import "bananalike/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is a tile coordinate on the map.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

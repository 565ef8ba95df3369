package component

import "bananalike/internal/ecs"

const CWantsToMove ecs.ComponentType = 4

// WantsToMove is a one-tick movement request consumed by the movement system.
type WantsToMove struct {
	DX, DY int
}

func (WantsToMove) Type() ecs.ComponentType { return CWantsToMove }

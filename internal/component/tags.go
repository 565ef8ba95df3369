package component

import "bananalike/internal/ecs"

const CTagPlayer ecs.ComponentType = 3

// TagPlayer marks an entity that responds to directional input.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

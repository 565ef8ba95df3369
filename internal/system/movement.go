package system

import (
	"context"

	"bananalike/internal/component"
	"bananalike/internal/ecs"
	"bananalike/internal/gamemap"
	"bananalike/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, map edge, or no position
)

func (r MoveResult) String() string {
	if r == MoveOK {
		return "ok"
	}
	return "blocked"
}

// ResolveMove computes where pos ends up after a (dx, dy) step on m.
// The candidate is clamped to the grid before the wall check, so a step off
// the edge lands on the border wall and is rejected.
func ResolveMove(pos component.Position, dx, dy int, m *gamemap.TileMap) (component.Position, bool) {
	x, y := m.Clamp(pos.X+dx, pos.Y+dy)
	if m.IsWall(x, y) {
		return pos, false
	}
	return component.Position{X: x, Y: y}, true
}

// TryMove attempts to move entity id by (dx, dy) on m.
func TryMove(w *ecs.World, m *gamemap.TileMap, id ecs.EntityID, dx, dy int) MoveResult {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked
	}
	next, moved := ResolveMove(posComp.(component.Position), dx, dy, m)
	if !moved {
		return MoveBlocked
	}
	w.Add(id, next)
	return MoveOK
}

// RunMovement resolves every pending WantsToMove against m and queues the
// intents for removal at the next Maintain. Returns how many entities moved.
func RunMovement(ctx context.Context, w *ecs.World, m *gamemap.TileMap) int {
	ids := w.Query(component.CWantsToMove, component.CPosition)
	if len(ids) == 0 {
		return 0
	}
	_, span := telemetry.Tracer("system").Start(ctx, "movement.resolve")
	defer span.End()

	moved := 0
	for _, id := range ids {
		intent := w.Get(id, component.CWantsToMove).(component.WantsToMove)
		if TryMove(w, m, id, intent.DX, intent.DY) == MoveOK {
			moved++
		}
		w.Commands().Remove(id, component.CWantsToMove)
	}

	span.SetAttributes(
		attribute.Int("movement.requests", len(ids)),
		attribute.Int("movement.moved", moved),
	)
	return moved
}

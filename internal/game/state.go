package game

import (
	"context"

	"bananalike/internal/component"
	"bananalike/internal/dice"
	"bananalike/internal/ecs"
	"bananalike/internal/factory"
	"bananalike/internal/gamemap"
	"bananalike/internal/generate"
	"bananalike/internal/render"
	"bananalike/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Surface is the drawing primitive a frontend supplies to the frame driver.
type Surface interface {
	Clear()
	SetCell(x, y int, fg, bg tcell.Color, glyph rune)
}

// State is the world for one play session: the generated map and the entity
// store. It is not safe for concurrent use; one goroutine drives all ticks.
type State struct {
	world *ecs.World
	tmap  *gamemap.TileMap
}

// NewState generates a map from cfg and spawns the player on its protected cell.
func NewState(ctx context.Context, cfg generate.Config, roller dice.Roller) *State {
	s := &State{
		world: ecs.NewWorld(),
		tmap:  generate.Generate(ctx, cfg, roller),
	}
	factory.NewPlayer(s.world, cfg.SpawnX, cfg.SpawnY)
	return s
}

// Map returns the read-only tile map.
func (s *State) Map() *gamemap.TileMap { return s.tmap }

// World returns the entity store.
func (s *State) World() *ecs.World { return s.world }

// PlayerPosition returns the position of the first player-tagged entity.
func (s *State) PlayerPosition() (component.Position, bool) {
	ids := s.world.Query(component.CTagPlayer, component.CPosition)
	if len(ids) == 0 {
		return component.Position{}, false
	}
	return s.world.Get(ids[0], component.CPosition).(component.Position), true
}

// Update runs the simulation half of a tick: a directional action becomes a
// WantsToMove on every player-tagged entity, movement is resolved against the
// map, and queued entity changes are applied. Reports whether anything moved.
func (s *State) Update(ctx context.Context, a Action) bool {
	moved := 0
	if dx, dy, ok := actionToDelta(a); ok {
		for _, id := range s.world.Query(component.CTagPlayer, component.CPosition) {
			s.world.Add(id, component.WantsToMove{DX: dx, DY: dy})
		}
		moved = system.RunMovement(ctx, s.world, s.tmap)
	}
	s.world.Maintain()
	return moved > 0
}

// Draw paints the whole map, then every entity with a Position and a
// Renderable on top of it.
func (s *State) Draw(surface Surface) {
	surface.Clear()
	s.tmap.Each(func(x, y int, k gamemap.TileKind) {
		glyph, fg, bg := render.TileStyle(k)
		surface.SetCell(x, y, fg, bg, glyph)
	})
	for _, id := range s.world.Query(component.CPosition, component.CRenderable) {
		pos := s.world.Get(id, component.CPosition).(component.Position)
		rend := s.world.Get(id, component.CRenderable).(component.Renderable)
		surface.SetCell(pos.X, pos.Y, rend.FG, rend.BG, rend.Glyph)
	}
}

// Tick runs one full input, update and render cycle.
func (s *State) Tick(ctx context.Context, a Action, surface Surface) {
	s.Update(ctx, a)
	s.Draw(surface)
}

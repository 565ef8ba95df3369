// Package generate builds the starting tile map.
package generate

import (
	"context"

	"bananalike/internal/dice"
	"bananalike/internal/gamemap"
	"bananalike/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultWidth      = 80
	DefaultHeight     = 50
	DefaultWallTrials = 100
)

// Config drives generation of one map.
type Config struct {
	Width, Height int
	// WallTrials is the number of random wall placements attempted. Trials
	// that land on an existing wall or on the spawn cell change nothing.
	WallTrials int
	// SpawnX, SpawnY is the protected cell that never becomes a wall.
	SpawnX, SpawnY int
}

// DefaultConfig returns the fixed 80x50 layout with the spawn at its center.
func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		WallTrials: DefaultWallTrials,
		SpawnX:     DefaultWidth / 2,
		SpawnY:     DefaultHeight / 2,
	}
}

// BorderCells returns how many cells lie on the outer edge of the map.
func (c Config) BorderCells() int {
	return 2*c.Width + 2*c.Height - 4
}

// Generate produces a floor map enclosed by walls with up to cfg.WallTrials
// extra walls scattered inside. Coordinates for each trial come from a
// 1-based die roll of Width-1 and Height-1 sides.
func Generate(ctx context.Context, cfg Config, roller dice.Roller) *gamemap.TileMap {
	_, span := telemetry.Tracer("generate").Start(ctx, "tilemap.generate")
	defer span.End()

	m := gamemap.New(cfg.Width, cfg.Height)

	for x := 0; x < cfg.Width; x++ {
		m.Set(x, 0, gamemap.TileWall)
		m.Set(x, cfg.Height-1, gamemap.TileWall)
	}
	for y := 0; y < cfg.Height; y++ {
		m.Set(0, y, gamemap.TileWall)
		m.Set(cfg.Width-1, y, gamemap.TileWall)
	}

	spawn := m.Idx(cfg.SpawnX, cfg.SpawnY)
	for iterIdx := 0; iterIdx < cfg.WallTrials; iterIdx++ {
		x := roller.RollDice(1, cfg.Width-1)
		y := roller.RollDice(1, cfg.Height-1)
		if idx := m.Idx(x, y); idx != spawn {
			m.Tiles[idx] = gamemap.TileWall
		}
	}

	span.SetAttributes(
		attribute.Int("tilemap.width", cfg.Width),
		attribute.Int("tilemap.height", cfg.Height),
		attribute.Int("tilemap.wall_trials", cfg.WallTrials),
		attribute.Int("tilemap.walls", m.Count(gamemap.TileWall)),
	)
	return m
}

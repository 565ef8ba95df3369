package generate

import (
	"context"
	"math/rand"
	"testing"

	"bananalike/internal/dice"
	"bananalike/internal/gamemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRoller replays a scripted sequence of rolls.
type fixedRoller struct {
	rolls []int
	calls [][2]int
}

func (f *fixedRoller) RollDice(n, sides int) int {
	f.calls = append(f.calls, [2]int{n, sides})
	v := f.rolls[0]
	f.rolls = f.rolls[1:]
	return v
}

func generateSeeded(seed int64) *gamemap.TileMap {
	return Generate(context.Background(), DefaultConfig(), dice.FromRand(rand.New(rand.NewSource(seed))))
}

func TestBorderIsWall(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		m := generateSeeded(seed)
		for x := 0; x < m.Width; x++ {
			require.True(t, m.IsWall(x, 0), "seed %d: top (%d,0)", seed, x)
			require.True(t, m.IsWall(x, m.Height-1), "seed %d: bottom (%d,%d)", seed, x, m.Height-1)
		}
		for y := 0; y < m.Height; y++ {
			require.True(t, m.IsWall(0, y), "seed %d: left (0,%d)", seed, y)
			require.True(t, m.IsWall(m.Width-1, y), "seed %d: right (%d,%d)", seed, m.Width-1, y)
		}
	}
}

func TestSpawnCellAlwaysFloor(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		m := generateSeeded(seed)
		assert.False(t, m.IsWall(40, 25), "seed %d put a wall on the spawn cell", seed)
	}
}

func TestWallCountBounds(t *testing.T) {
	cfg := DefaultConfig()
	border := cfg.BorderCells()
	require.Equal(t, 2*80+2*50-4, border)
	for seed := int64(1); seed <= 50; seed++ {
		walls := generateSeeded(seed).Count(gamemap.TileWall)
		assert.GreaterOrEqual(t, walls, border)
		assert.LessOrEqual(t, walls, border+cfg.WallTrials)
	}
}

func TestSameSeedSameMap(t *testing.T) {
	a := generateSeeded(1234)
	b := generateSeeded(1234)
	assert.Equal(t, a.Tiles, b.Tiles)
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := generateSeeded(1)
	b := generateSeeded(2)
	assert.NotEqual(t, a.Tiles, b.Tiles)
}

func TestTrialsUseDieSizes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WallTrials = 2
	r := &fixedRoller{rolls: []int{10, 10, 79, 49}}

	m := Generate(context.Background(), cfg, r)

	require.Equal(t, [][2]int{{1, 79}, {1, 49}, {1, 79}, {1, 49}}, r.calls)
	assert.True(t, m.IsWall(10, 10))
	// (79,49) is already a border wall: no new wall appears.
	assert.Equal(t, cfg.BorderCells()+1, m.Count(gamemap.TileWall))
}

func TestTrialOnSpawnIsSkipped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WallTrials = 3
	r := &fixedRoller{rolls: []int{40, 25, 40, 25, 41, 25}}

	m := Generate(context.Background(), cfg, r)

	assert.False(t, m.IsWall(40, 25))
	assert.True(t, m.IsWall(41, 25))
	assert.Equal(t, cfg.BorderCells()+1, m.Count(gamemap.TileWall))
}

func TestZeroTrialsOnlyBorder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WallTrials = 0
	m := Generate(context.Background(), cfg, dice.New(5))
	assert.Equal(t, cfg.BorderCells(), m.Count(gamemap.TileWall))
}

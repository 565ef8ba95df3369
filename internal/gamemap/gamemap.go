// Package gamemap holds the fixed-size tile grid the player moves on.
package gamemap

// TileMap is a row-major grid of tiles. Cell (x, y) lives at Tiles[y*Width+x].
// Once generated it is treated as read-only.
type TileMap struct {
	Width, Height int
	Tiles         []TileKind
}

// New creates a TileMap filled with floor.
func New(width, height int) *TileMap {
	return &TileMap{
		Width:  width,
		Height: height,
		Tiles:  make([]TileKind, width*height),
	}
}

// Idx converts (x, y) to a linear index into Tiles.
func (m *TileMap) Idx(x, y int) int {
	return y*m.Width + x
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Clamp pulls (x, y) onto the nearest in-bounds cell.
func (m *TileMap) Clamp(x, y int) (int, int) {
	return clamp(x, 0, m.Width-1), clamp(y, 0, m.Height-1)
}

// TileAt returns the tile kind at (x, y). Panics if out of bounds.
func (m *TileMap) TileAt(x, y int) TileKind {
	if !m.InBounds(x, y) {
		panic("gamemap: TileAt out of bounds")
	}
	return m.Tiles[m.Idx(x, y)]
}

// IsWall reports whether (x, y) is a wall. Panics if out of bounds.
func (m *TileMap) IsWall(x, y int) bool {
	return m.TileAt(x, y) == TileWall
}

// Set replaces the tile at (x, y). Only generators and tests call it.
func (m *TileMap) Set(x, y int, k TileKind) {
	m.Tiles[m.Idx(x, y)] = k
}

// Count returns how many cells hold the given kind.
func (m *TileMap) Count(k TileKind) int {
	n := 0
	for _, t := range m.Tiles {
		if t == k {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (m *TileMap) Each(fn func(x, y int, k TileKind)) {
	for i, t := range m.Tiles {
		fn(i%m.Width, i/m.Width, t)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

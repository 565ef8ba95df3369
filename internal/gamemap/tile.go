package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileFloor TileKind = iota
	TileWall
)

// String returns a lowercase name for the kind.
func (k TileKind) String() string {
	switch k {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	}
	return "unknown"
}

// Walkable reports whether an entity may stand on the tile.
func (k TileKind) Walkable() bool {
	return k == TileFloor
}

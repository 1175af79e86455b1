// Package room provides room tile grids and their template-driven generation.
package room

// Tile is the kind of a single room tile. The string values are part of the
// snapshot format.
type Tile string

const (
	// TileVoid is impassable emptiness outside the room shape.
	TileVoid Tile = "VOID_BLACK"
	// TileFloor is a plain walkable tile.
	TileFloor Tile = "FLOOR"
	// TileExit is a walkable tile that participates in room transitions.
	TileExit Tile = "EXIT"
)

// IsWalkable reports whether the tile can be walked on.
func (t Tile) IsWalkable() bool {
	return t == TileFloor || t == TileExit
}

// IsValid reports whether the tile is a known kind.
func (t Tile) IsValid() bool {
	switch t {
	case TileVoid, TileFloor, TileExit:
		return true
	default:
		return false
	}
}

package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileVoid is a cell no room covers.
	TileVoid Tile = ' '
	// TileFloor is a room cell.
	TileFloor Tile = '.'
	// TileDoor is a room cell carrying a door.
	TileDoor Tile = '+'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor || t == TileDoor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

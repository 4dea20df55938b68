package world

// TileMap is a rasterized view of a room list, indexed [y][x].
type TileMap struct {
	Width  int
	Height int
	Tiles  [][]Tile
	owner  [][]int
}

// Rasterize paints rooms onto a size×size map: floor on every cell, door
// tiles on door cells.
func Rasterize(size int, rooms []Room) *TileMap {
	tiles := make([][]Tile, size)
	owner := make([][]int, size)
	for y := range tiles {
		tiles[y] = make([]Tile, size)
		owner[y] = make([]int, size)
		for x := range tiles[y] {
			tiles[y][x] = TileVoid
			owner[y][x] = -1
		}
	}

	m := &TileMap{Width: size, Height: size, Tiles: tiles, owner: owner}
	for i, r := range rooms {
		for _, c := range r.Cells {
			if m.inBounds(c.X, c.Y) {
				m.Tiles[c.Y][c.X] = TileFloor
				m.owner[c.Y][c.X] = i
			}
		}
		for _, d := range r.Doors {
			if m.inBounds(d.X, d.Y) {
				m.Tiles[d.Y][d.X] = TileDoor
			}
		}
	}
	return m
}

func (m *TileMap) inBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// GetTile returns the tile at the given position.
func (m *TileMap) GetTile(x, y int) Tile {
	if !m.inBounds(x, y) {
		return TileVoid
	}
	return m.Tiles[y][x]
}

// IsPassable returns true if the given position can be walked on.
func (m *TileMap) IsPassable(x, y int) bool {
	return m.GetTile(x, y).IsPassable()
}

// RoomIndexAt returns the index of the room containing the position, or -1.
func (m *TileMap) RoomIndexAt(x, y int) int {
	if !m.inBounds(x, y) {
		return -1
	}
	return m.owner[y][x]
}

// Bounds returns the smallest rectangle containing every room cell.
// ok is false for an empty map.
func (m *TileMap) Bounds() (lo, hi Point, ok bool) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.owner[y][x] < 0 {
				continue
			}
			if !ok {
				lo, hi, ok = Point{x, y}, Point{x, y}, true
				continue
			}
			lo.X, lo.Y = min(lo.X, x), min(lo.Y, y)
			hi.X, hi.Y = max(hi.X, x), max(hi.Y, y)
		}
	}
	return lo, hi, ok
}

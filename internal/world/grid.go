package world

// Grid tracks which cells of the square dungeon area are taken by rooms.
type Grid struct {
	size     int
	occupied [][]bool
}

// NewGrid creates an empty size×size grid.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	occupied := make([][]bool, size)
	for y := range occupied {
		occupied[y] = make([]bool, size)
	}
	return &Grid{size: size, occupied: occupied}
}

// Size returns the grid edge length.
func (g *Grid) Size() int {
	return g.size
}

// Reset clears every cell.
func (g *Grid) Reset() {
	for y := range g.occupied {
		clear(g.occupied[y])
	}
}

// InBounds returns true if the cell lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Occupied returns true if the cell is taken. Out-of-bounds cells count as taken.
func (g *Grid) Occupied(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.occupied[y][x]
}

// IsFree returns true if the cell is in bounds and unoccupied.
func (g *Grid) IsFree(p Point) bool {
	return !g.Occupied(p.X, p.Y)
}

// IsRectangleFree returns true if every cell of the w×h rectangle anchored at
// (x,y) is in bounds and unoccupied.
func (g *Grid) IsRectangleFree(x, y, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	if !g.InBounds(x, y) || !g.InBounds(x+w-1, y+h-1) {
		return false
	}
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			if g.occupied[cy][cx] {
				return false
			}
		}
	}
	return true
}

// MarkRoom recomputes room.Cells from its rectangle and marks them occupied.
// Callers validate with IsRectangleFree first.
func (g *Grid) MarkRoom(room *Room) {
	room.Cells = rectCells(room.X, room.Y, room.Width, room.Height)
	for _, c := range room.Cells {
		if g.InBounds(c.X, c.Y) {
			g.occupied[c.Y][c.X] = true
		}
	}
}

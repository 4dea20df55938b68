package world

// placement is a candidate position for a new room next to an anchor door.
type placement struct {
	origin Point // top-left of the new room
	local  Point // new room's entry cell in its local frame
}

// entry returns the absolute entry cell of the placed room.
func (p placement) entry() Point {
	return p.origin.Add(p.local)
}

// edgeLength is the length of the new room's edge that faces the anchor.
func edgeLength(t RoomTemplate, dir Direction) int {
	if dir == North || dir == South {
		return t.Width
	}
	return t.Height
}

// entryEdgeCell walks the new room's edge facing back towards the anchor:
// an east exit lands on the west edge (x=0), west on the east edge, north on
// the south edge (y=height-1), south on the north edge.
func entryEdgeCell(t RoomTemplate, dir Direction, offset int) Point {
	switch dir {
	case East:
		return Point{X: 0, Y: offset}
	case West:
		return Point{X: t.Width - 1, Y: offset}
	case North:
		return Point{X: offset, Y: t.Height - 1}
	default:
		return Point{X: offset, Y: 0}
	}
}

// placementAt checks a single edge offset. The template's local edge cell is
// translated onto the cell adjacent to the anchor door, and the resulting
// rectangle must be free.
func placementAt(grid *Grid, anchor *Room, door Point, dir Direction, t RoomTemplate, offset int) (placement, bool) {
	if anchor.HasDoorAt(door) {
		return placement{}, false
	}
	target := door.Add(dir.Delta())
	local := entryEdgeCell(t, dir, offset)
	origin := target.Sub(local)
	if !grid.IsRectangleFree(origin.X, origin.Y, t.Width, t.Height) {
		return placement{}, false
	}
	return placement{origin: origin, local: local}, true
}

// resolvePlacements enumerates every valid top-left placement of t next to
// the anchor's door cell when leaving in dir.
func resolvePlacements(grid *Grid, anchor *Room, door Point, dir Direction, t RoomTemplate) []placement {
	if anchor.HasDoorAt(door) {
		return nil
	}
	var out []placement
	for offset := 0; offset < edgeLength(t, dir); offset++ {
		if p, ok := placementAt(grid, anchor, door, dir, t, offset); ok {
			out = append(out, p)
		}
	}
	return out
}

// openDirections returns the directions whose neighbouring cell is in bounds
// and unoccupied.
func openDirections(grid *Grid, cell Point) []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if grid.IsFree(cell.Add(d.Delta())) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

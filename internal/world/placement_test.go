package world

import "testing"

func TestEntryEdgeCell(t *testing.T) {
	tmpl := MustRoomTemplate("box", 4, 3)

	tests := []struct {
		dir    Direction
		offset int
		want   Point
	}{
		{East, 2, Point{0, 2}},
		{West, 1, Point{3, 1}},
		{North, 3, Point{3, 2}},
		{South, 0, Point{0, 0}},
	}

	for _, tt := range tests {
		if got := entryEdgeCell(tmpl, tt.dir, tt.offset); got != tt.want {
			t.Errorf("entryEdgeCell(%v, %d) = %v, want %v", tt.dir, tt.offset, got, tt.want)
		}
	}

	if edgeLength(tmpl, North) != 4 || edgeLength(tmpl, East) != 3 {
		t.Error("Edge length should be width for north/south and height for east/west")
	}
}

func TestResolvePlacementsLandsOnAdjacentCell(t *testing.T) {
	g := NewGrid(20)
	anchor := Room{X: 5, Y: 5, Width: 3, Height: 3}
	g.MarkRoom(&anchor)

	tmpl := MustRoomTemplate("box", 3, 2)
	door := Point{7, 6}

	placements := resolvePlacements(g, &anchor, door, East, tmpl)
	if len(placements) != 2 {
		t.Fatalf("Expected 2 placements along a 2-high west edge, got %d", len(placements))
	}

	target := Point{8, 6}
	for _, p := range placements {
		if p.entry() != target {
			t.Errorf("Placement %+v enters at %v, want %v", p, p.entry(), target)
		}
		if p.local.X != 0 {
			t.Errorf("East exit should enter on the west edge, got local %v", p.local)
		}
		if !g.IsRectangleFree(p.origin.X, p.origin.Y, tmpl.Width, tmpl.Height) {
			t.Errorf("Placement %+v overlaps occupied cells", p)
		}
	}
}

func TestResolvePlacementsRespectsOccupancy(t *testing.T) {
	g := NewGrid(20)
	anchor := Room{X: 5, Y: 5, Width: 3, Height: 3}
	g.MarkRoom(&anchor)

	// Block the cells below the exit so only one vertical offset survives.
	blocker := Room{X: 8, Y: 7, Width: 3, Height: 1}
	g.MarkRoom(&blocker)

	tmpl := MustRoomTemplate("box", 3, 2)
	placements := resolvePlacements(g, &anchor, Point{7, 6}, East, tmpl)
	if len(placements) != 1 {
		t.Fatalf("Expected 1 placement, got %d", len(placements))
	}
	if placements[0].origin != (Point{8, 5}) {
		t.Errorf("Expected origin (8,5), got %v", placements[0].origin)
	}
}

func TestResolvePlacementsRejectsUsedDoor(t *testing.T) {
	g := NewGrid(20)
	anchor := Room{X: 5, Y: 5, Width: 3, Height: 3}
	g.MarkRoom(&anchor)
	anchor.addDoor(Point{7, 6}, East)

	if got := resolvePlacements(g, &anchor, Point{7, 6}, East, MustRoomTemplate("box", 2, 2)); len(got) != 0 {
		t.Errorf("Expected no placements from a cell already used as a door, got %d", len(got))
	}
}

func TestOpenDirections(t *testing.T) {
	g := NewGrid(5)
	room := Room{X: 0, Y: 0, Width: 2, Height: 2}
	g.MarkRoom(&room)

	dirs := openDirections(g, Point{1, 1})
	if len(dirs) != 2 {
		t.Fatalf("Expected 2 open directions from the corner, got %v", dirs)
	}
	for _, d := range dirs {
		if d != South && d != East {
			t.Errorf("Unexpected open direction %v", d)
		}
	}
}

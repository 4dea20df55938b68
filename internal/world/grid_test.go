package world

import "testing"

func TestGridRectangleFree(t *testing.T) {
	g := NewGrid(10)

	tests := []struct {
		name       string
		x, y, w, h int
		want       bool
	}{
		{"inside", 2, 2, 3, 3, true},
		{"full grid", 0, 0, 10, 10, true},
		{"past right edge", 8, 0, 3, 1, false},
		{"past bottom edge", 0, 9, 1, 2, false},
		{"negative origin", -1, 0, 2, 2, false},
		{"zero width", 1, 1, 0, 2, false},
	}

	for _, tt := range tests {
		if got := g.IsRectangleFree(tt.x, tt.y, tt.w, tt.h); got != tt.want {
			t.Errorf("%s: IsRectangleFree(%d,%d,%d,%d) = %v, want %v", tt.name, tt.x, tt.y, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestGridMarkRoom(t *testing.T) {
	g := NewGrid(10)
	room := Room{X: 3, Y: 4, Width: 2, Height: 3}
	g.MarkRoom(&room)

	if len(room.Cells) != 6 {
		t.Fatalf("Expected 6 cells, got %d", len(room.Cells))
	}
	if room.Cells[0] != (Point{3, 4}) || room.Cells[5] != (Point{4, 6}) {
		t.Errorf("Unexpected cell order: first %v last %v", room.Cells[0], room.Cells[5])
	}
	for _, c := range room.Cells {
		if !g.Occupied(c.X, c.Y) {
			t.Errorf("Cell %v should be occupied", c)
		}
	}

	if g.IsRectangleFree(4, 6, 2, 2) {
		t.Error("Rectangle overlapping the room should not be free")
	}
	if !g.IsRectangleFree(5, 4, 2, 3) {
		t.Error("Rectangle next to the room should be free")
	}

	g.Reset()
	if g.Occupied(3, 4) {
		t.Error("Reset should clear every cell")
	}
}

func TestGridOutOfBoundsIsOccupied(t *testing.T) {
	g := NewGrid(3)
	if !g.Occupied(-1, 0) || !g.Occupied(0, 3) {
		t.Error("Out-of-bounds cells should report occupied")
	}
	if g.InBounds(3, 0) {
		t.Error("InBounds(3,0) on a 3x3 grid should be false")
	}
}

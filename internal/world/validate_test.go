package world

import "testing"

func placedRoom(id, x, y, w, h int, kind Kind) Room {
	r := Room{ID: id, X: x, Y: y, Width: w, Height: h, Kind: kind, PathIndex: -1}
	r.Cells = rectCells(x, y, w, h)
	return r
}

func TestValidateAcceptsLinkedRooms(t *testing.T) {
	a := placedRoom(0, 0, 0, 2, 2, KindStart)
	b := placedRoom(1, 2, 0, 2, 2, KindPrimary)
	a.addDoor(Point{1, 0}, East)
	b.addDoor(Point{2, 0}, West)

	if err := Validate([]Room{a, b}); err != nil {
		t.Errorf("Expected valid rooms, got %v", err)
	}
}

func TestValidateAcceptsLinkedStartRooms(t *testing.T) {
	a := placedRoom(0, 0, 2, 2, 2, KindStart)
	b := placedRoom(1, 0, 0, 2, 2, KindEntrance)
	a.addDoor(Point{0, 2}, North)
	b.addDoor(Point{0, 1}, South)

	if err := Validate([]Room{a, b}); err != nil {
		t.Errorf("Expected valid rooms, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		rooms func() []Room
	}{
		{"overlap", func() []Room {
			a := placedRoom(0, 0, 0, 2, 2, KindStart)
			b := placedRoom(1, 1, 1, 2, 2, KindStart)
			return []Room{a, b}
		}},
		{"door outside room", func() []Room {
			a := placedRoom(0, 0, 0, 2, 2, KindStart)
			a.addDoor(Point{5, 5}, North)
			return []Room{a}
		}},
		{"duplicate door", func() []Room {
			a := placedRoom(0, 0, 0, 2, 2, KindStart)
			a.addDoor(Point{0, 0}, North)
			a.addDoor(Point{0, 0}, West)
			return []Room{a}
		}},
		{"unmatched entry", func() []Room {
			a := placedRoom(0, 0, 0, 2, 2, KindStart)
			b := placedRoom(1, 2, 0, 2, 2, KindPrimary)
			b.addDoor(Point{2, 0}, West)
			return []Room{a, b}
		}},
		{"door facing an unlinked room", func() []Room {
			a := placedRoom(0, 0, 2, 2, 2, KindStart)
			b := placedRoom(1, 0, 0, 2, 2, KindEntrance)
			a.addDoor(Point{0, 2}, North)
			return []Room{a, b}
		}},
		{"entry into void", func() []Room {
			b := placedRoom(1, 2, 0, 2, 2, KindOffshoot)
			b.addDoor(Point{2, 0}, West)
			return []Room{b}
		}},
	}

	for _, tt := range tests {
		if err := Validate(tt.rooms()); err == nil {
			t.Errorf("%s: expected a validation error", tt.name)
		}
	}
}

package world

import "testing"

func TestRegistryRollback(t *testing.T) {
	var r Registry
	a := r.Append(Room{TemplateID: "a"})
	a.addDoor(Point{0, 0}, North)

	sp := r.Save()

	r.At(0).addDoor(Point{1, 0}, East)
	r.Append(Room{TemplateID: "b"})
	r.Append(Room{TemplateID: "c"})

	if r.Len() != 3 {
		t.Fatalf("Expected 3 rooms before rollback, got %d", r.Len())
	}

	r.Rollback(sp)

	if r.Len() != 1 {
		t.Fatalf("Expected 1 room after rollback, got %d", r.Len())
	}
	if doors := r.At(0).Doors; len(doors) != 1 || doors[0].Direction != North {
		t.Errorf("Expected only the saved north door, got %+v", doors)
	}

	// IDs follow positions, so the next append reuses id 1.
	if b := r.Append(Room{TemplateID: "b2"}); b.ID != 1 {
		t.Errorf("Expected id 1 after rollback, got %d", b.ID)
	}
}

func TestRegistryRoomsAreCopies(t *testing.T) {
	var r Registry
	room := r.Append(Room{TemplateID: "a", Cells: []Point{{0, 0}}})
	room.addDoor(Point{0, 0}, South)

	rooms := r.Rooms()
	rooms[0].Doors[0].Direction = West
	rooms[0].Cells[0] = Point{9, 9}

	if r.At(0).Doors[0].Direction != South {
		t.Error("Mutating a returned room changed the registry's doors")
	}
	if r.At(0).Cells[0] != (Point{0, 0}) {
		t.Error("Mutating a returned room changed the registry's cells")
	}
}

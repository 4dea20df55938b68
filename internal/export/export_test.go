package export

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/samdwyer/roomchain/internal/catalog"
	"github.com/samdwyer/roomchain/internal/world"
)

func generate(t *testing.T, seed int64) []world.Room {
	t.Helper()
	g := world.NewGenerator(100, rand.New(rand.NewSource(seed)), world.Options{})
	res, err := g.Generate(context.Background(), catalog.MustLoadDefault().Plan(10, 2, 2))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return res.Rooms
}

func sameRoom(a, b world.Room) bool {
	if a.ID != b.ID || a.TemplateID != b.TemplateID || a.X != b.X || a.Y != b.Y ||
		a.Width != b.Width || a.Height != b.Height || a.Difficulty != b.Difficulty ||
		a.Kind != b.Kind || a.PathIndex != b.PathIndex {
		return false
	}
	if len(a.Cells) != len(b.Cells) || len(a.Doors) != len(b.Doors) {
		return false
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			return false
		}
	}
	for i := range a.Doors {
		if a.Doors[i] != b.Doors[i] {
			return false
		}
	}
	return true
}

func TestRoundTrip(t *testing.T) {
	rooms := generate(t, 77)
	id := uuid.New()

	data, err := Encode(NewDocument(id, 100, 77, rooms))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	doc, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if doc.ExpeditionID != id || doc.GridSize != 100 || doc.Seed != 77 {
		t.Errorf("Metadata lost: %+v", doc)
	}

	back, err := doc.WorldRooms()
	if err != nil {
		t.Fatalf("WorldRooms failed: %v", err)
	}
	if len(back) != len(rooms) {
		t.Fatalf("Expected %d rooms, got %d", len(rooms), len(back))
	}
	for i := range rooms {
		if !sameRoom(rooms[i], back[i]) {
			t.Errorf("Room %d changed in round trip:\n%+v\n%+v", i, rooms[i], back[i])
		}
	}
}

func TestWireFieldNames(t *testing.T) {
	data, err := Encode(NewDocument(uuid.New(), 100, 0, generate(t, 3)))
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{`"id"`, `"templateId"`, `"x"`, `"y"`, `"width"`, `"height"`, `"cells"`, `"doors"`, `"direction"`, `"difficulty"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("Encoded document is missing field %s", field)
		}
	}
	if !strings.Contains(string(data), `"direction": "north"`) {
		t.Error("Directions should be encoded by name")
	}
}

func TestDecodeDetectsTampering(t *testing.T) {
	doc := NewDocument(uuid.New(), 100, 0, generate(t, 5))
	doc.Rooms[2].X++

	data, err := Encode(doc)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(data); !errors.Is(err, ErrFingerprintMismatch) {
		t.Errorf("Expected ErrFingerprintMismatch, got %v", err)
	}
}

func TestDecodeDetectsCellTampering(t *testing.T) {
	doc := NewDocument(uuid.New(), 100, 0, generate(t, 5))
	doc.Rooms[3].Cells[0].Y--

	data, err := Encode(doc)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(data); !errors.Is(err, ErrFingerprintMismatch) {
		t.Errorf("Expected ErrFingerprintMismatch, got %v", err)
	}
}

func TestFingerprintStable(t *testing.T) {
	rooms := generate(t, 9)
	a := NewDocument(uuid.New(), 100, 1, rooms)
	b := NewDocument(uuid.New(), 100, 2, rooms)
	if a.Fingerprint != b.Fingerprint {
		t.Error("Fingerprint should depend on the layout only")
	}
}

func TestToRoomRejectsBadDirection(t *testing.T) {
	rec := RoomRecord{ID: 1, Doors: []DoorRecord{{X: 0, Y: 0, Direction: "up"}}}
	if _, err := rec.ToRoom(); err == nil {
		t.Error("Expected an error for an unknown direction")
	}
}

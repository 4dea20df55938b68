// Package export converts generated rooms to and from the wire format
// consumed by renderers, stores and other external collaborators.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/roomchain/internal/world"
)

// ErrFingerprintMismatch is returned when a decoded document does not hash to
// its recorded fingerprint.
var ErrFingerprintMismatch = errors.New("room list fingerprint mismatch")

// DoorRecord is the wire shape of a door.
type DoorRecord struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Direction string `json:"direction"`
}

// CellRecord is the wire shape of a cell.
type CellRecord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RoomRecord is the wire shape of a room. Field names are part of the
// external contract.
type RoomRecord struct {
	ID         int          `json:"id"`
	TemplateID string       `json:"templateId"`
	X          int          `json:"x"`
	Y          int          `json:"y"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Cells      []CellRecord `json:"cells"`
	Doors      []DoorRecord `json:"doors"`
	Difficulty int          `json:"difficulty"`
	Kind       string       `json:"kind,omitempty"`
	PathIndex  *int         `json:"pathIndex,omitempty"`
}

// Document wraps a room list with the metadata an expedition is stored under.
type Document struct {
	ExpeditionID uuid.UUID    `json:"expeditionId"`
	GridSize     int          `json:"gridSize"`
	Seed         int64        `json:"seed,omitempty"`
	Fingerprint  string       `json:"fingerprint"`
	Rooms        []RoomRecord `json:"rooms"`
}

// FromRoom converts a room to its wire record.
func FromRoom(r world.Room) RoomRecord {
	rec := RoomRecord{
		ID:         r.ID,
		TemplateID: r.TemplateID,
		X:          r.X,
		Y:          r.Y,
		Width:      r.Width,
		Height:     r.Height,
		Cells:      make([]CellRecord, len(r.Cells)),
		Doors:      make([]DoorRecord, len(r.Doors)),
		Difficulty: r.Difficulty,
		Kind:       r.Kind.String(),
	}
	for i, c := range r.Cells {
		rec.Cells[i] = CellRecord{X: c.X, Y: c.Y}
	}
	for i, d := range r.Doors {
		rec.Doors[i] = DoorRecord{X: d.X, Y: d.Y, Direction: d.Direction.String()}
	}
	if r.PathIndex >= 0 {
		idx := r.PathIndex
		rec.PathIndex = &idx
	}
	return rec
}

// ToRoom converts a wire record back to a room.
func (rec RoomRecord) ToRoom() (world.Room, error) {
	r := world.Room{
		ID:         rec.ID,
		TemplateID: rec.TemplateID,
		X:          rec.X,
		Y:          rec.Y,
		Width:      rec.Width,
		Height:     rec.Height,
		Cells:      make([]world.Point, len(rec.Cells)),
		Doors:      make([]world.Door, len(rec.Doors)),
		Difficulty: rec.Difficulty,
		PathIndex:  -1,
	}
	for i, c := range rec.Cells {
		r.Cells[i] = world.Point{X: c.X, Y: c.Y}
	}
	for i, d := range rec.Doors {
		dir, err := world.ParseDirection(d.Direction)
		if err != nil {
			return world.Room{}, fmt.Errorf("room %d door %d: %w", rec.ID, i, err)
		}
		r.Doors[i] = world.Door{X: d.X, Y: d.Y, Direction: dir}
	}
	kind, err := parseKind(rec.Kind)
	if err != nil {
		return world.Room{}, fmt.Errorf("room %d: %w", rec.ID, err)
	}
	r.Kind = kind
	if rec.PathIndex != nil {
		r.PathIndex = *rec.PathIndex
	}
	return r, nil
}

func parseKind(s string) (world.Kind, error) {
	for _, k := range []world.Kind{world.KindStart, world.KindEntrance, world.KindPrimary, world.KindStatic, world.KindOffshoot} {
		if k.String() == s {
			return k, nil
		}
	}
	if s == "" {
		return world.KindPrimary, nil
	}
	return 0, fmt.Errorf("unknown room kind %q", s)
}

// NewDocument builds a document for the rooms and stamps its fingerprint.
func NewDocument(id uuid.UUID, gridSize int, seed int64, rooms []world.Room) Document {
	doc := Document{
		ExpeditionID: id,
		GridSize:     gridSize,
		Seed:         seed,
		Rooms:        make([]RoomRecord, len(rooms)),
	}
	for i, r := range rooms {
		doc.Rooms[i] = FromRoom(r)
	}
	doc.Fingerprint = Fingerprint(doc.Rooms)
	return doc
}

// WorldRooms converts the document's records back to rooms.
func (d Document) WorldRooms() ([]world.Room, error) {
	rooms := make([]world.Room, len(d.Rooms))
	for i, rec := range d.Rooms {
		r, err := rec.ToRoom()
		if err != nil {
			return nil, err
		}
		rooms[i] = r
	}
	return rooms, nil
}

// Fingerprint hashes the geometry, cells and doors of a room list with
// xxhash. It ignores metadata so identical layouts hash identically.
func Fingerprint(rooms []RoomRecord) string {
	h := xxhash.New()
	buf := make([]byte, 0, 64)
	for _, r := range rooms {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(r.ID), 10)
		buf = append(buf, '|')
		buf = append(buf, r.TemplateID...)
		for _, v := range []int{r.X, r.Y, r.Width, r.Height, r.Difficulty} {
			buf = append(buf, '|')
			buf = strconv.AppendInt(buf, int64(v), 10)
		}
		for _, c := range r.Cells {
			buf = append(buf, ':')
			buf = strconv.AppendInt(buf, int64(c.X), 10)
			buf = append(buf, ',')
			buf = strconv.AppendInt(buf, int64(c.Y), 10)
		}
		for _, d := range r.Doors {
			buf = append(buf, ';')
			buf = strconv.AppendInt(buf, int64(d.X), 10)
			buf = append(buf, ',')
			buf = strconv.AppendInt(buf, int64(d.Y), 10)
			buf = append(buf, ',')
			buf = append(buf, d.Direction...)
		}
		buf = append(buf, '\n')
		_, _ = h.Write(buf)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// Encode marshals the document as indented JSON.
func Encode(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Decode unmarshals a document and verifies its fingerprint.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse document: %w", err)
	}
	if got := Fingerprint(doc.Rooms); got != doc.Fingerprint {
		return Document{}, fmt.Errorf("%w: recorded %s, computed %s", ErrFingerprintMismatch, doc.Fingerprint, got)
	}
	return doc, nil
}

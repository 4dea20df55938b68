package world

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// RoomTemplate is an immutable room shape. Door cells are in the room's local
// frame with (0,0) at the top-left corner.
type RoomTemplate struct {
	ID     string
	Width  int
	Height int

	doorSet   mapset.Set[Point]
	doorCells []Point // sorted, row-major
}

// NewRoomTemplate creates a template, rejecting door cells outside the shape.
func NewRoomTemplate(id string, width, height int, doorCells []Point) (RoomTemplate, error) {
	if id == "" {
		return RoomTemplate{}, errors.New("template id is empty")
	}
	if width <= 0 || height <= 0 {
		return RoomTemplate{}, fmt.Errorf("template %s: invalid size %dx%d", id, width, height)
	}

	set := mapset.New[Point]()
	cells := make([]Point, 0, len(doorCells))
	for _, c := range doorCells {
		if c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height {
			return RoomTemplate{}, fmt.Errorf("template %s: door cell (%d,%d) outside %dx%d", id, c.X, c.Y, width, height)
		}
		if set.Has(c) {
			continue
		}
		set.Put(c)
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})

	return RoomTemplate{
		ID:        id,
		Width:     width,
		Height:    height,
		doorSet:   set,
		doorCells: cells,
	}, nil
}

// MustRoomTemplate is NewRoomTemplate that panics on error.
func MustRoomTemplate(id string, width, height int, doorCells ...Point) RoomTemplate {
	t, err := NewRoomTemplate(id, width, height, doorCells)
	if err != nil {
		panic(err)
	}
	return t
}

// HasDoorCell reports whether the local cell is a candidate door position.
func (t RoomTemplate) HasDoorCell(p Point) bool {
	return t.doorSet.Has(p)
}

// DoorCells returns a copy of the local door cells in row-major order.
func (t RoomTemplate) DoorCells() []Point {
	out := make([]Point, len(t.doorCells))
	copy(out, t.doorCells)
	return out
}

// DoorCount returns the number of distinct door cells.
func (t RoomTemplate) DoorCount() int {
	return len(t.doorCells)
}

// isShape reports whether the template carries geometry, as opposed to being
// a bare id reference.
func (t RoomTemplate) isShape() bool {
	return t.Width > 0 && t.Height > 0
}

// StaticRoomPosition schedules a template into the primary path.
// StepsFromPrevious counts primary rooms since the previous static insertion
// (or since the path start for the first one). Index is filled in by the
// path builder with the zero-based primary index the room lands on.
type StaticRoomPosition struct {
	RoomTemplate
	StepsFromPrevious int
	Index             int
}

// StaticRef builds a schedule entry that references a template by id only;
// the shape is resolved against the generation lookup table.
func StaticRef(templateID string, stepsFromPrevious int) StaticRoomPosition {
	return StaticRoomPosition{
		RoomTemplate:      RoomTemplate{ID: templateID},
		StepsFromPrevious: stepsFromPrevious,
	}
}

// StaticAt builds a schedule entry that carries its own shape.
func StaticAt(t RoomTemplate, stepsFromPrevious int) StaticRoomPosition {
	return StaticRoomPosition{RoomTemplate: t, StepsFromPrevious: stepsFromPrevious}
}

// scheduleIndices converts steps-from-previous into cumulative zero-based
// primary indices: steps [5,4] become [4,8].
func scheduleIndices(statics []StaticRoomPosition) []int {
	indices := make([]int, len(statics))
	total := 0
	for i, s := range statics {
		total += s.StepsFromPrevious
		indices[i] = total - 1
	}
	return indices
}

// templateTable is the id lookup built once per generation run.
type templateTable map[string]RoomTemplate

func newTemplateTable(pool []RoomTemplate, statics []StaticRoomPosition) templateTable {
	table := make(templateTable, len(pool)+len(statics))
	for _, t := range pool {
		table[t.ID] = t
	}
	for _, s := range statics {
		if s.isShape() {
			table[s.ID] = s.RoomTemplate
		}
	}
	return table
}

func (tt templateTable) lookup(id string) (RoomTemplate, error) {
	t, ok := tt[id]
	if !ok {
		return RoomTemplate{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return t, nil
}

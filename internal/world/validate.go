package world

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks the structural invariants of a generated room list: no two
// rooms share a cell, every door lies inside its room, no room has two doors
// on one cell, every placed room's entry door faces a matching door on a
// neighbouring room, and any door facing another room is matched there.
func Validate(rooms []Room) error {
	var errs []error

	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if rooms[i].Intersects(rooms[j]) {
				errs = append(errs, fmt.Errorf("rooms %d and %d overlap", rooms[i].ID, rooms[j].ID))
			}
		}
	}

	// Cells outside their rectangle are reported below, so a shared cell
	// always shows up as a rectangle overlap above.
	owner := make(map[Point]int)
	for _, r := range rooms {
		if len(r.Cells) != r.Width*r.Height {
			errs = append(errs, fmt.Errorf("room %d: %d cells for %dx%d", r.ID, len(r.Cells), r.Width, r.Height))
		}
		for _, c := range r.Cells {
			if !r.Contains(c.X, c.Y) {
				errs = append(errs, fmt.Errorf("room %d: cell (%d,%d) outside rectangle", r.ID, c.X, c.Y))
			}
			if _, ok := owner[c]; !ok {
				owner[c] = r.ID
			}
		}

		seen := make(map[Point]bool, len(r.Doors))
		for _, d := range r.Doors {
			if !r.Contains(d.X, d.Y) {
				errs = append(errs, fmt.Errorf("room %d: door (%d,%d) outside room", r.ID, d.X, d.Y))
			}
			if seen[d.Pos()] {
				errs = append(errs, fmt.Errorf("room %d: duplicate door at (%d,%d)", r.ID, d.X, d.Y))
			}
			seen[d.Pos()] = true
		}
	}

	byID := make(map[int]*Room, len(rooms))
	for i := range rooms {
		byID[rooms[i].ID] = &rooms[i]
	}
	for _, r := range rooms {
		for _, d := range r.Doors {
			beyond := d.Pos().Add(d.Direction.Delta())
			id, ok := owner[beyond]
			if !ok || id == r.ID {
				continue
			}
			if !hasDoor(byID[id], beyond, d.Direction.Opposite()) {
				errs = append(errs, fmt.Errorf("room %d: door (%d,%d) faces room %d without a matching door", r.ID, d.X, d.Y, id))
			}
		}

		if r.Kind != KindPrimary && r.Kind != KindStatic && r.Kind != KindOffshoot {
			continue
		}
		if len(r.Doors) == 0 {
			errs = append(errs, fmt.Errorf("room %d: no entry door", r.ID))
			continue
		}
		entry := r.Doors[0]
		from := entry.Pos().Add(entry.Direction.Delta())
		id, ok := owner[from]
		if !ok {
			errs = append(errs, fmt.Errorf("room %d: entry door leads nowhere", r.ID))
			continue
		}
		if !hasDoor(byID[id], from, entry.Direction.Opposite()) {
			errs = append(errs, fmt.Errorf("room %d: entry door has no matching exit on room %d", r.ID, id))
		}
	}

	return errors.Join(errs...)
}

func hasDoor(r *Room, p Point, dir Direction) bool {
	if r == nil {
		return false
	}
	for _, d := range r.Doors {
		if d.Pos() == p && d.Direction == dir {
			return true
		}
	}
	return false
}

// PrimaryPath returns the path rooms ordered by path index.
func PrimaryPath(rooms []Room) []Room {
	var path []Room
	for _, r := range rooms {
		if r.Kind == KindPrimary || r.Kind == KindStatic {
			path = append(path, r)
		}
	}
	slices.SortStableFunc(path, func(a, b Room) int { return a.PathIndex - b.PathIndex })
	return path
}

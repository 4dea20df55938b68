package world

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
)

// FirstRoomDoor adds one extra door to the main start room before the path grows.
// Cell is in the start room's local frame.
type FirstRoomDoor struct {
	Cell      Point
	Direction Direction
}

// PathRequest describes the primary path to build.
type PathRequest struct {
	Length    int
	Templates []RoomTemplate
	Statics   []StaticRoomPosition
	FirstDoor *FirstRoomDoor
}

// PathReport summarizes a successful or failed path build.
type PathReport struct {
	Attempts int
	Rooms    int
	Statics  []StaticRoomPosition // with Index resolved
}

// stepKind tags the outcome of a single placement step.
type stepKind int

const (
	stepPlaced stepKind = iota
	stepDeadEnd
	stepFatal
)

// stepResult is Placed(room) | DeadEnd | Fatal(err).
type stepResult struct {
	kind stepKind
	room *Room
	err  error
}

func placed(room *Room) stepResult { return stepResult{kind: stepPlaced, room: room} }
func deadEnd() stepResult          { return stepResult{kind: stepDeadEnd} }
func fatal(err error) stepResult   { return stepResult{kind: stepFatal, err: err} }

// pathBuilder holds the per-attempt state of primary path construction.
type pathBuilder struct {
	g       *Generator
	req     PathRequest
	table   templateTable
	indices []int

	current    int   // registry index of the room being departed
	door       Point // absolute door cell on the current room
	created    int
	nextStatic int
}

// CreatePath grows the primary path from the main start room. Every dead end
// rolls the grid and registry back to the start rooms and retries; exhausting
// the attempt budget is fatal and leaves only the start rooms in place.
func (g *Generator) CreatePath(ctx context.Context, req PathRequest) (PathReport, error) {
	ctx, span := g.tracer.Start(ctx, "dungeon.create_path")
	defer span.End()

	report := PathReport{}
	if !g.started {
		return report, ErrNoStartRoom
	}
	g.rollback(g.startSave)

	if req.Length > 0 && len(req.Templates) == 0 {
		return report, ErrEmptyPool
	}

	b := &pathBuilder{
		g:       g,
		req:     req,
		table:   newTemplateTable(req.Templates, req.Statics),
		indices: scheduleIndices(req.Statics),
	}

	// Resolve the static schedule up front; a missing id is fatal.
	statics := make([]StaticRoomPosition, len(req.Statics))
	for i, s := range req.Statics {
		t, err := b.table.lookup(s.ID)
		if err != nil {
			span.RecordError(err)
			return report, fmt.Errorf("static room %d: %w", i, err)
		}
		statics[i] = StaticRoomPosition{RoomTemplate: t, StepsFromPrevious: s.StepsFromPrevious, Index: b.indices[i]}
	}
	b.req.Statics = statics
	report.Statics = statics

	if req.FirstDoor != nil {
		main := g.registry.At(g.mainIndex)
		cell := main.Origin().Add(req.FirstDoor.Cell)
		if !main.Contains(cell.X, cell.Y) {
			return report, fmt.Errorf("first room door (%d,%d) outside start room", req.FirstDoor.Cell.X, req.FirstDoor.Cell.Y)
		}
		if !main.HasDoorAt(cell) {
			main.addDoor(cell, req.FirstDoor.Direction)
			g.linkFixedNeighbour(cell, req.FirstDoor.Direction)
		}
	}
	base := g.registry.Save()

	for attempt := 1; attempt <= g.opts.PathAttempts; attempt++ {
		report.Attempts = attempt
		res := b.attempt()
		switch res.kind {
		case stepPlaced:
			g.countAttempt(ctx, "path", "success")
			report.Rooms = b.created
			span.SetAttributes(
				attribute.Int("path.attempts", attempt),
				attribute.Int("path.rooms", b.created),
			)
			g.log.V(1).Info("primary path built", "attempts", attempt, "rooms", b.created)
			return report, nil
		case stepFatal:
			g.countAttempt(ctx, "path", "fatal")
			g.rollback(base)
			span.RecordError(res.err)
			return report, res.err
		default:
			g.countAttempt(ctx, "path", "dead_end")
			g.log.V(2).Info("path attempt hit a dead end", "attempt", attempt, "rooms", b.created)
			g.rollback(base)
		}
	}

	err := fmt.Errorf("%w: %d attempts for %d rooms", ErrPathExhausted, g.opts.PathAttempts, req.Length)
	span.RecordError(err)
	span.SetAttributes(attribute.Int("path.attempts", g.opts.PathAttempts))
	return report, err
}

// linkFixedNeighbour gives the room beyond a start-room door the matching
// opposite door, so a first door facing the entrance links both sides.
func (g *Generator) linkFixedNeighbour(door Point, dir Direction) {
	target := door.Add(dir.Delta())
	for i := 0; i < g.registry.Len(); i++ {
		r := g.registry.At(i)
		if r.Contains(target.X, target.Y) && !r.HasDoorAt(target) {
			r.addDoor(target, dir.Opposite())
			return
		}
	}
}

// attempt builds the whole path once. It returns Placed with the final room,
// DeadEnd when the search got stuck, or Fatal.
func (b *pathBuilder) attempt() stepResult {
	b.current = b.g.mainIndex
	b.created = 0
	b.nextStatic = 0

	main := b.g.registry.At(b.current)
	var free []Point
	for _, local := range b.g.mainTemplate.DoorCells() {
		if c := main.Origin().Add(local); !main.HasDoorAt(c) {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return fatal(fmt.Errorf("%w: start room %s", ErrNoSecondaryDoor, main.TemplateID))
	}
	b.door = pick(b.g.rng, free)

	last := main
	for b.created < b.req.Length {
		res := b.step()
		if res.kind != stepPlaced {
			return res
		}
		last = res.room
	}
	return placed(last)
}

// step places the next primary room.
func (b *pathBuilder) step() stepResult {
	g := b.g

	dirs := openDirections(g.grid, b.door)
	if len(dirs) == 0 {
		return deadEnd()
	}
	dir := pick(g.rng, dirs)

	kind := KindPrimary
	var t RoomTemplate
	if b.nextStatic < len(b.indices) && b.created == b.indices[b.nextStatic] {
		t = b.req.Statics[b.nextStatic].RoomTemplate
		kind = KindStatic
	} else {
		t = pick(g.rng, b.req.Templates)
	}

	anchor := g.registry.At(b.current)
	var candidates []placement
	for _, p := range resolvePlacements(g.grid, anchor, b.door, dir, t) {
		if t.HasDoorCell(p.local) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return deadEnd()
	}
	p := pick(g.rng, candidates)

	// The start room gets its exit door too, so every link has both sides.
	anchor.addDoor(b.door, dir)

	room := Room{
		TemplateID: t.ID,
		X:          p.origin.X,
		Y:          p.origin.Y,
		Width:      t.Width,
		Height:     t.Height,
		Difficulty: 1 + b.created/g.opts.DifficultyStep,
		Kind:       kind,
		PathIndex:  b.created,
	}
	room.addDoor(p.entry(), dir.Opposite())
	g.grid.MarkRoom(&room)
	added := g.registry.Append(room)

	var exits []Point
	for _, c := range t.DoorCells() {
		if c != p.local {
			exits = append(exits, c)
		}
	}
	if len(exits) == 0 {
		return fatal(fmt.Errorf("%w: %s", ErrNoSecondaryDoor, t.ID))
	}

	if kind == KindStatic {
		b.nextStatic++
	}
	b.created++
	b.current = added.ID
	b.door = p.origin.Add(pick(g.rng, exits))
	return placed(added)
}

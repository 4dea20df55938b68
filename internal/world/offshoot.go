package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// OffshootRequest describes the branch chains to attach to the primary path.
type OffshootRequest struct {
	Count     int
	Depth     int
	Templates []RoomTemplate
}

// OffshootReport describes what CreateOffshoots committed. A shortfall is not
// an error: Complete is false and the registry holds the previous state.
type OffshootReport struct {
	Requested int
	Built     int
	Attempts  int
	Roots     []int // registry ids of the branch roots
	Complete  bool
}

// CreateOffshoots attaches Count branch chains of exactly Depth rooms each to
// eligible primary rooms. Either all branches are committed or none are.
func (g *Generator) CreateOffshoots(ctx context.Context, req OffshootRequest) OffshootReport {
	ctx, span := g.tracer.Start(ctx, "dungeon.create_offshoots")
	defer span.End()

	report := OffshootReport{Requested: req.Count}
	if req.Count <= 0 || req.Depth <= 0 {
		report.Complete = true
		return report
	}

	eligible := g.eligibleRoots()
	span.SetAttributes(
		attribute.Int("offshoots.requested", req.Count),
		attribute.Int("offshoots.depth", req.Depth),
		attribute.Int("offshoots.eligible_roots", len(eligible)),
	)
	if len(req.Templates) == 0 || len(eligible) < req.Count {
		g.log.Info("offshoots skipped", "requested", req.Count, "eligibleRoots", len(eligible), "templates", len(req.Templates))
		return report
	}

	committed := g.registry.Save()
	for attempt := 1; attempt <= g.opts.OffshootAttempts; attempt++ {
		report.Attempts = attempt
		roots, ok := g.tryOffshoots(req, eligible)
		if ok {
			g.countAttempt(ctx, "offshoot", "success")
			report.Built = len(roots)
			report.Roots = roots
			report.Complete = true
			span.SetAttributes(attribute.Int("offshoots.attempts", attempt))
			g.log.V(1).Info("offshoots built", "attempts", attempt, "count", len(roots), "depth", req.Depth)
			return report
		}
		g.countAttempt(ctx, "offshoot", "dead_end")
		g.rollback(committed)
	}

	span.SetAttributes(attribute.Int("offshoots.attempts", g.opts.OffshootAttempts))
	g.log.Info("offshoot budget exhausted, keeping primary path only", "attempts", g.opts.OffshootAttempts)
	return report
}

// eligibleRoots lists primary rooms that are neither start, static nor offshoot rooms.
func (g *Generator) eligibleRoots() []int {
	var roots []int
	for i := 0; i < g.registry.Len(); i++ {
		if g.registry.At(i).Kind == KindPrimary {
			roots = append(roots, i)
		}
	}
	return roots
}

// tryOffshoots is one outer attempt. Roots are drawn without replacement; a
// branch that cannot finish is discarded and the next root is tried.
func (g *Generator) tryOffshoots(req OffshootRequest, eligible []int) ([]int, bool) {
	pool := append([]int(nil), eligible...)
	shuffle(g.rng, pool)

	var roots []int
	for len(roots) < req.Count {
		if len(pool) == 0 {
			return nil, false
		}
		root := pool[0]
		pool = pool[1:]

		sp := g.registry.Save()
		if g.growBranch(root, req) {
			roots = append(roots, root)
			continue
		}
		g.rollback(sp)
	}
	return roots, true
}

// growBranch appends Depth rooms chained from root.
func (g *Generator) growBranch(root int, req OffshootRequest) bool {
	difficulty := g.registry.At(root).Difficulty
	current := root
	for step := 0; step < req.Depth; step++ {
		t := pick(g.rng, req.Templates)
		res := g.offshootStep(current, t, difficulty)
		if res.kind != stepPlaced {
			return false
		}
		current = res.room.ID
	}
	return true
}

// offshootStep searches for one adjacent placement by random sampling rather
// than enumeration: direction, connection cell and entry offset are all drawn
// per try.
func (g *Generator) offshootStep(current int, t RoomTemplate, difficulty int) stepResult {
	for try := 0; try < g.opts.PlacementTries; try++ {
		anchor := g.registry.At(current)
		dirs := g.roomOpenDirections(anchor)
		if len(dirs) == 0 {
			return deadEnd()
		}
		dir := pick(g.rng, dirs)
		cell := pick(g.rng, anchor.Cells)
		offset := g.rng.Intn(edgeLength(t, dir))

		p, ok := placementAt(g.grid, anchor, cell, dir, t, offset)
		if !ok {
			continue
		}

		anchor.addDoor(cell, dir)
		room := Room{
			TemplateID: t.ID,
			X:          p.origin.X,
			Y:          p.origin.Y,
			Width:      t.Width,
			Height:     t.Height,
			Difficulty: difficulty,
			Kind:       KindOffshoot,
			PathIndex:  -1,
		}
		room.addDoor(p.entry(), dir.Opposite())
		g.grid.MarkRoom(&room)
		return placed(g.registry.Append(room))
	}
	return deadEnd()
}

// roomOpenDirections returns directions in which at least one cell just
// outside the room's edge is free.
func (g *Generator) roomOpenDirections(r *Room) []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if g.edgeHasFreeNeighbour(r, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func (g *Generator) edgeHasFreeNeighbour(r *Room, d Direction) bool {
	switch d {
	case North, South:
		y := r.Y - 1
		if d == South {
			y = r.Y + r.Height
		}
		for x := r.X; x < r.X+r.Width; x++ {
			if g.grid.IsFree(Point{X: x, Y: y}) {
				return true
			}
		}
	default:
		x := r.X - 1
		if d == East {
			x = r.X + r.Width
		}
		for y := r.Y; y < r.Y+r.Height; y++ {
			if g.grid.IsFree(Point{X: x, Y: y}) {
				return true
			}
		}
	}
	return false
}

package world

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/roomchain/internal/telemetry"
)

const (
	// Default attempt bounds for the randomized searches.
	DefaultPathAttempts     = 300
	DefaultOffshootAttempts = 500
	DefaultPlacementTries   = 3000

	// DefaultDifficultyStep is how many primary rooms share a difficulty tier.
	DefaultDifficultyStep = 4
)

// Options tunes a Generator. Zero fields fall back to the defaults.
type Options struct {
	PathAttempts     int
	OffshootAttempts int
	PlacementTries   int
	DifficultyStep   int
	Logger           logr.Logger
}

func (o Options) withDefaults() Options {
	if o.PathAttempts <= 0 {
		o.PathAttempts = DefaultPathAttempts
	}
	if o.OffshootAttempts <= 0 {
		o.OffshootAttempts = DefaultOffshootAttempts
	}
	if o.PlacementTries <= 0 {
		o.PlacementTries = DefaultPlacementTries
	}
	if o.DifficultyStep <= 0 {
		o.DifficultyStep = DefaultDifficultyStep
	}
	if o.Logger.GetSink() == nil {
		o.Logger = logr.Discard()
	}
	return o
}

// StartRoom is a fixed room placed before the path grows.
type StartRoom struct {
	Template RoomTemplate
	X, Y     int
}

// StartRooms holds the path root and the auxiliary entrance room.
// The entrance is optional; a zero Template skips it.
type StartRooms struct {
	Main     StartRoom
	Entrance StartRoom
}

// Plan bundles every input of a full generation run.
type Plan struct {
	Start     StartRooms
	Path      PathRequest
	Offshoots OffshootRequest
}

// Result is the outcome of Generate.
type Result struct {
	Rooms     []Room
	Path      PathReport
	Offshoots OffshootReport
}

// Generator owns the occupancy grid and room registry for one dungeon.
// It is not safe for concurrent use.
type Generator struct {
	grid     *Grid
	registry Registry
	rng      Rand
	opts     Options
	log      logr.Logger

	started      bool
	startSave    SavePoint
	mainIndex    int
	mainTemplate RoomTemplate

	tracer   trace.Tracer
	attempts metric.Int64Counter
}

// NewGenerator creates a generator over a gridSize×gridSize area.
func NewGenerator(gridSize int, rng Rand, opts Options) *Generator {
	opts = opts.withDefaults()
	if rng == nil {
		rng = NewRand(0)
	}

	// A counter that fails to register is replaced by a no-op.
	attempts, err := telemetry.Meter("world").Int64Counter(
		"dungeon.attempts",
		metric.WithDescription("Generation attempts by phase and outcome"),
	)
	if err != nil {
		opts.Logger.Error(err, "attempt counter unavailable")
		attempts = nil
	}

	return &Generator{
		grid:     NewGrid(gridSize),
		rng:      rng,
		opts:     opts,
		log:      opts.Logger.WithName("world"),
		tracer:   telemetry.Tracer("world"),
		attempts: attempts,
	}
}

// GridSize returns the grid edge length.
func (g *Generator) GridSize() int {
	return g.grid.Size()
}

// Rooms returns a copy of every placed room in creation order.
func (g *Generator) Rooms() []Room {
	return g.registry.Rooms()
}

// CreateStartRooms resets the grid and registry and places the fixed start rooms.
func (g *Generator) CreateStartRooms(ctx context.Context, start StartRooms) error {
	_, span := g.tracer.Start(ctx, "dungeon.create_start_rooms")
	defer span.End()

	g.grid.Reset()
	g.registry.Clear()
	g.started = false

	main, err := g.placeFixed(start.Main, KindStart)
	if err != nil {
		return err
	}
	g.mainIndex = main.ID
	g.mainTemplate = start.Main.Template

	if start.Entrance.Template.isShape() {
		if _, err := g.placeFixed(start.Entrance, KindEntrance); err != nil {
			g.grid.Reset()
			g.registry.Clear()
			return err
		}
	}

	g.startSave = g.registry.Save()
	g.started = true

	span.SetAttributes(
		attribute.Int("dungeon.grid_size", g.grid.Size()),
		attribute.Int("dungeon.start_rooms", g.registry.Len()),
	)
	return nil
}

func (g *Generator) placeFixed(s StartRoom, kind Kind) (*Room, error) {
	t := s.Template
	if !t.isShape() {
		return nil, fmt.Errorf("%w: start template %q has no shape", ErrStartBlocked, t.ID)
	}
	if !g.grid.IsRectangleFree(s.X, s.Y, t.Width, t.Height) {
		return nil, fmt.Errorf("%w: %s at (%d,%d)", ErrStartBlocked, t.ID, s.X, s.Y)
	}
	room := Room{
		TemplateID: t.ID,
		X:          s.X,
		Y:          s.Y,
		Width:      t.Width,
		Height:     t.Height,
		Kind:       kind,
		PathIndex:  -1,
	}
	g.grid.MarkRoom(&room)
	return g.registry.Append(room), nil
}

// Generate runs the full pipeline: start rooms, primary path, offshoots.
// Only the path phase can fail; an offshoot shortfall is reported in Result.
func (g *Generator) Generate(ctx context.Context, plan Plan) (Result, error) {
	ctx, span := g.tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	if err := g.CreateStartRooms(ctx, plan.Start); err != nil {
		span.RecordError(err)
		return Result{}, err
	}

	path, err := g.CreatePath(ctx, plan.Path)
	if err != nil {
		span.RecordError(err)
		return Result{Path: path}, err
	}

	offshoots := g.CreateOffshoots(ctx, plan.Offshoots)
	rooms := g.Rooms()

	span.SetAttributes(
		attribute.Int("dungeon.room_count", len(rooms)),
		attribute.Int("dungeon.offshoots_built", offshoots.Built),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return Result{Rooms: rooms, Path: path, Offshoots: offshoots}, nil
}

// rebuildGrid re-marks every registered room after a rollback.
func (g *Generator) rebuildGrid() {
	g.grid.Reset()
	for i := 0; i < g.registry.Len(); i++ {
		g.grid.MarkRoom(g.registry.At(i))
	}
}

func (g *Generator) rollback(sp SavePoint) {
	g.registry.Rollback(sp)
	g.rebuildGrid()
}

func (g *Generator) countAttempt(ctx context.Context, phase, outcome string) {
	if g.attempts == nil {
		return
	}
	g.attempts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("phase", phase),
		attribute.String("outcome", outcome),
	))
}

package preview

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomchain/internal/telemetry"
	"github.com/samdwyer/roomchain/internal/ui"
	"github.com/samdwyer/roomchain/internal/world"
)

// Regenerate produces a fresh dungeon for the viewer.
type Regenerate func(ctx context.Context) (world.Result, error)

// Viewer holds the preview state.
type Viewer struct {
	screen     *ui.Screen
	renderer   *ui.Renderer
	gridSize   int
	regenerate Regenerate

	result  world.Result
	origin  world.Point
	mode    Mode
	status  string
	running bool
}

// New creates a viewer showing result; 'r' calls regenerate for a new one.
func New(screen *ui.Screen, renderer *ui.Renderer, gridSize int, result world.Result, regenerate Regenerate) *Viewer {
	return &Viewer{
		screen:     screen,
		renderer:   renderer,
		gridSize:   gridSize,
		regenerate: regenerate,
		result:     result,
		mode:       ModeInfo,
		running:    true,
	}
}

// Run executes the viewer loop until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("preview")
	_, span := tracer.Start(ctx, "preview.init")
	v.origin = v.renderer.Render(v.gridSize, v.result.Rooms)
	span.SetAttributes(
		attribute.Int("dungeon.rooms", len(v.result.Rooms)),
		attribute.Int("preview.origin_x", v.origin.X),
		attribute.Int("preview.origin_y", v.origin.Y),
	)
	span.End()

	for v.running {
		v.draw()
		v.handleInput(ctx)
	}

	v.screen.Close()
	return nil
}

func (v *Viewer) draw() {
	v.renderer.RenderAt(v.gridSize, v.result.Rooms, v.origin)
	if v.mode == ModeInfo {
		_, h := v.screen.Size()
		v.renderer.RenderMessage(v.statusLine(), h-1)
	}
}

func (v *Viewer) statusLine() string {
	if v.status != "" {
		return v.status
	}
	return fmt.Sprintf("rooms %d  path %d  offshoots %d/%d  [arrows] pan [r] regenerate [i] info [q] quit",
		len(v.result.Rooms), v.result.Path.Rooms, v.result.Offshoots.Built, v.result.Offshoots.Requested)
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyUp:
		v.pan(0, -1)
	case tcell.KeyDown:
		v.pan(0, 1)
	case tcell.KeyLeft:
		v.pan(-1, 0)
	case tcell.KeyRight:
		v.pan(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'i':
			if v.mode == ModeInfo {
				v.mode = ModeMap
			} else {
				v.mode = ModeInfo
			}
		case 'r':
			v.regen(ctx)
		}
	}
}

// pan moves the viewport, keeping it inside the grid.
func (v *Viewer) pan(dx, dy int) {
	v.origin.X = max(-1, min(v.gridSize-1, v.origin.X+dx))
	v.origin.Y = max(-1, min(v.gridSize-1, v.origin.Y+dy))
}

func (v *Viewer) regen(ctx context.Context) {
	if v.regenerate == nil {
		return
	}
	result, err := v.regenerate(ctx)
	if err != nil {
		v.status = "regenerate failed: " + err.Error()
		return
	}
	v.status = ""
	v.result = result
	v.origin = v.renderer.Render(v.gridSize, v.result.Rooms)
}

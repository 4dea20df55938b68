package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomchain/internal/world"
)

func newSimScreen(t *testing.T, w, h int) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	screen, err := Wrap(sim)
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(screen.Close)
	return sim, screen
}

func TestRenderDrawsRoomsAndDoors(t *testing.T) {
	sim, screen := newSimScreen(t, 20, 10)

	a := world.Room{ID: 0, X: 5, Y: 5, Width: 2, Height: 2, Kind: world.KindStart, PathIndex: -1}
	b := world.Room{ID: 1, X: 7, Y: 5, Width: 1, Height: 1, Kind: world.KindPrimary, Difficulty: 2}
	g := world.NewGrid(20)
	g.MarkRoom(&a)
	g.MarkRoom(&b)
	a.Doors = []world.Door{{X: 6, Y: 5, Direction: world.East}}
	b.Doors = []world.Door{{X: 7, Y: 5, Direction: world.West}}

	r := NewRenderer(screen, MustDifficultyRamp("#00FF00", "#FF0000", 4))
	origin := r.Render(20, []world.Room{a, b})
	if origin != (world.Point{X: 4, Y: 4}) {
		t.Fatalf("Expected origin (4,4), got %v", origin)
	}

	// Room a's top-left cell lands at screen (1,1) after the margin.
	if ch, _, _, _ := sim.GetContent(1, 1); ch != world.TileFloor.Rune() {
		t.Errorf("Expected floor at (1,1), got %q", ch)
	}
	if ch, _, _, _ := sim.GetContent(2, 1); ch != world.TileDoor.Rune() {
		t.Errorf("Expected door at (2,1), got %q", ch)
	}
	if ch, _, _, _ := sim.GetContent(3, 1); ch != world.TileDoor.Rune() {
		t.Errorf("Expected door at (3,1), got %q", ch)
	}
	if ch, _, _, _ := sim.GetContent(0, 0); ch == world.TileFloor.Rune() {
		t.Error("Margin cell should be empty")
	}
}

func TestRenderEmpty(t *testing.T) {
	_, screen := newSimScreen(t, 5, 5)
	r := NewRenderer(screen, MustDifficultyRamp("#00FF00", "#FF0000", 4))
	if origin := r.Render(10, nil); origin != (world.Point{}) {
		t.Errorf("Expected zero origin for an empty dungeon, got %v", origin)
	}
}

func TestDifficultyRamp(t *testing.T) {
	ramp := MustDifficultyRamp("#00FF00", "#FF0000", 4)

	if got, want := ramp.Color(0), tcell.NewRGBColor(0, 255, 0); got != want {
		t.Errorf("Difficulty 0 = %v, want %v", got, want)
	}
	if got, want := ramp.Color(10), tcell.NewRGBColor(255, 0, 0); got != want {
		t.Errorf("Difficulty above max should clamp to the hard colour, got %v", got)
	}
	if ramp.Color(2) == ramp.Color(0) {
		t.Error("Mid difficulty should differ from the easy colour")
	}

	if _, err := NewDifficultyRamp("nope", "#FF0000", 4); err == nil {
		t.Error("Expected an error for an invalid hex colour")
	}
}

package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomchain/internal/world"
)

// Renderer handles drawing a generated dungeon to the screen.
type Renderer struct {
	screen *Screen
	ramp   DifficultyRamp
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, ramp DifficultyRamp) *Renderer {
	return &Renderer{screen: screen, ramp: ramp}
}

// Render draws the rooms cropped to their bounding box. It returns the
// top-left grid cell drawn at screen (0,0).
func (r *Renderer) Render(gridSize int, rooms []world.Room) world.Point {
	m := world.Rasterize(gridSize, rooms)
	origin, _, ok := m.Bounds()
	if ok {
		// Leave a one-cell margin around the dungeon.
		origin = origin.Sub(world.Point{X: 1, Y: 1})
	}
	r.draw(m, rooms, origin)
	return origin
}

// RenderAt draws the rooms with grid cell origin at screen (0,0).
func (r *Renderer) RenderAt(gridSize int, rooms []world.Room, origin world.Point) {
	r.draw(world.Rasterize(gridSize, rooms), rooms, origin)
}

func (r *Renderer) draw(m *world.TileMap, rooms []world.Room, origin world.Point) {
	r.screen.Clear()
	width, height := r.screen.Size()

	for sy := 0; sy < height; sy++ {
		for sx := 0; sx < width; sx++ {
			x, y := origin.X+sx, origin.Y+sy
			idx := m.RoomIndexAt(x, y)
			if idx < 0 {
				continue
			}
			tile := m.GetTile(x, y)
			r.screen.SetContent(sx, sy, tile.Rune(), r.tileStyle(tile, rooms[idx]))
		}
	}

	r.screen.Show()
}

// tileStyle returns the style for a tile in the given room.
func (r *Renderer) tileStyle(tile world.Tile, room world.Room) tcell.Style {
	switch tile {
	case world.TileDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case world.TileFloor:
		style := tcell.StyleDefault.Foreground(r.ramp.Color(room.Difficulty))
		if room.Kind == world.KindStart || room.Kind == world.KindEntrance {
			style = style.Foreground(tcell.ColorAqua)
		}
		return style
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
	r.screen.Show()
}

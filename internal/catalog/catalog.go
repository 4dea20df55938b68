// Package catalog loads room templates, start rooms and the static room
// schedule that drive dungeon generation.
package catalog

import (
	"errors"
	"fmt"

	"github.com/samdwyer/roomchain/internal/world"
)

const defaultFile = "templates.json"

// TemplateDef defines a room shape loaded from JSON.
type TemplateDef struct {
	ID        string        `json:"id"`        // Unique identifier (e.g., "hall2")
	Width     int           `json:"width"`     // Width in cells
	Height    int           `json:"height"`    // Height in cells
	DoorCells []world.Point `json:"doorCells"` // Local door positions, (0,0) = top-left
}

// StaticDef schedules a template into the primary path.
type StaticDef struct {
	TemplateID        string `json:"templateId"`
	StepsFromPrevious int    `json:"stepsFromPrevious"`
}

// PlacementDef places a fixed start room.
type PlacementDef struct {
	TemplateID string `json:"templateId"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
}

// DoorDef is an extra door on the main start room, in its local frame.
type DoorDef struct {
	X         int             `json:"x"`
	Y         int             `json:"y"`
	Direction world.Direction `json:"direction"`
}

// StartDef describes the two fixed start rooms.
type StartDef struct {
	Main      PlacementDef  `json:"main"`
	Entrance  *PlacementDef `json:"entrance,omitempty"`
	FirstDoor *DoorDef      `json:"firstDoor,omitempty"`
}

// File represents the structure of a catalog JSON file.
type File struct {
	Templates    []TemplateDef `json:"templates"`
	Pool         []string      `json:"pool"`
	OffshootPool []string      `json:"offshootPool,omitempty"`
	Statics      []StaticDef   `json:"statics,omitempty"`
	Start        StartDef      `json:"start"`
}

// Catalog holds validated templates and provides lookup utilities.
type Catalog struct {
	templates map[string]world.RoomTemplate
	order     []string
	file      File
}

// New validates a loaded file and builds the id lookup.
func New(file File) (*Catalog, error) {
	c := &Catalog{
		templates: make(map[string]world.RoomTemplate, len(file.Templates)),
		file:      file,
	}

	for _, def := range file.Templates {
		if _, dup := c.templates[def.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", def.ID)
		}
		t, err := world.NewRoomTemplate(def.ID, def.Width, def.Height, def.DoorCells)
		if err != nil {
			return nil, err
		}
		c.templates[def.ID] = t
		c.order = append(c.order, def.ID)
	}

	if len(file.Pool) == 0 {
		return nil, errors.New("catalog pool is empty")
	}
	for _, ids := range [][]string{file.Pool, file.OffshootPool} {
		if _, err := c.resolve(ids); err != nil {
			return nil, err
		}
	}
	if _, ok := c.templates[file.Start.Main.TemplateID]; !ok {
		return nil, fmt.Errorf("start template: %w: %q", world.ErrTemplateNotFound, file.Start.Main.TemplateID)
	}
	if e := file.Start.Entrance; e != nil {
		if _, ok := c.templates[e.TemplateID]; !ok {
			return nil, fmt.Errorf("entrance template: %w: %q", world.ErrTemplateNotFound, e.TemplateID)
		}
	}

	return c, nil
}

func (c *Catalog) resolve(ids []string) ([]world.RoomTemplate, error) {
	out := make([]world.RoomTemplate, 0, len(ids))
	for _, id := range ids {
		t, ok := c.templates[id]
		if !ok {
			return nil, fmt.Errorf("pool: %w: %q", world.ErrTemplateNotFound, id)
		}
		out = append(out, t)
	}
	return out, nil
}

// GetByID returns the template with the given ID.
func (c *Catalog) GetByID(id string) (world.RoomTemplate, bool) {
	t, ok := c.templates[id]
	return t, ok
}

// Count returns the number of templates.
func (c *Catalog) Count() int {
	return len(c.order)
}

// Pool returns the general primary-path template pool.
func (c *Catalog) Pool() []world.RoomTemplate {
	pool, _ := c.resolve(c.file.Pool)
	return pool
}

// OffshootPool returns the offshoot pool, falling back to the general pool.
func (c *Catalog) OffshootPool() []world.RoomTemplate {
	if len(c.file.OffshootPool) == 0 {
		return c.Pool()
	}
	pool, _ := c.resolve(c.file.OffshootPool)
	return pool
}

// Statics returns the static schedule in declared order. Entries whose id is
// unknown stay as bare references; the generator reports them as fatal.
func (c *Catalog) Statics() []world.StaticRoomPosition {
	out := make([]world.StaticRoomPosition, 0, len(c.file.Statics))
	for _, s := range c.file.Statics {
		if t, ok := c.templates[s.TemplateID]; ok {
			out = append(out, world.StaticAt(t, s.StepsFromPrevious))
			continue
		}
		out = append(out, world.StaticRef(s.TemplateID, s.StepsFromPrevious))
	}
	return out
}

// StartRooms returns the fixed start rooms.
func (c *Catalog) StartRooms() world.StartRooms {
	s := c.file.Start
	start := world.StartRooms{
		Main: world.StartRoom{Template: c.templates[s.Main.TemplateID], X: s.Main.X, Y: s.Main.Y},
	}
	if s.Entrance != nil {
		start.Entrance = world.StartRoom{Template: c.templates[s.Entrance.TemplateID], X: s.Entrance.X, Y: s.Entrance.Y}
	}
	return start
}

// FirstDoor returns the optional extra door for the main start room.
func (c *Catalog) FirstDoor() *world.FirstRoomDoor {
	d := c.file.Start.FirstDoor
	if d == nil {
		return nil
	}
	return &world.FirstRoomDoor{Cell: world.Point{X: d.X, Y: d.Y}, Direction: d.Direction}
}

// Plan assembles a full generation plan from the catalog.
func (c *Catalog) Plan(pathLength, offshoots, depth int) world.Plan {
	return world.Plan{
		Start: c.StartRooms(),
		Path: world.PathRequest{
			Length:    pathLength,
			Templates: c.Pool(),
			Statics:   c.Statics(),
			FirstDoor: c.FirstDoor(),
		},
		Offshoots: world.OffshootRequest{
			Count:     offshoots,
			Depth:     depth,
			Templates: c.OffshootPool(),
		},
	}
}

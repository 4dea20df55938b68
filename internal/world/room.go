package world

// Kind classifies how a room entered the dungeon.
type Kind int

const (
	KindStart Kind = iota
	KindEntrance
	KindPrimary
	KindStatic
	KindOffshoot
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindEntrance:
		return "entrance"
	case KindPrimary:
		return "primary"
	case KindStatic:
		return "static"
	case KindOffshoot:
		return "offshoot"
	default:
		return "unknown"
	}
}

// Door is a connection point on a placed room. Direction is the side the door
// opens towards.
type Door struct {
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Direction Direction `json:"direction"`
}

// Pos returns the door's grid coordinate.
func (d Door) Pos() Point {
	return Point{X: d.X, Y: d.Y}
}

// Room is a placed template instance.
type Room struct {
	ID            int
	TemplateID    string
	X, Y          int // Top-left corner position
	Width, Height int
	Cells         []Point
	Doors         []Door
	Difficulty    int

	Kind      Kind
	PathIndex int // zero-based primary index, -1 for rooms off the primary path
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// HasDoorAt reports whether the room already has a door on the cell.
func (r Room) HasDoorAt(p Point) bool {
	for _, d := range r.Doors {
		if d.X == p.X && d.Y == p.Y {
			return true
		}
	}
	return false
}

// Origin returns the top-left corner.
func (r Room) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Clone returns a deep copy so callers cannot alias generator state.
func (r Room) Clone() Room {
	c := r
	c.Cells = append([]Point(nil), r.Cells...)
	c.Doors = append([]Door(nil), r.Doors...)
	return c
}

func (r *Room) addDoor(p Point, dir Direction) {
	r.Doors = append(r.Doors, Door{X: p.X, Y: p.Y, Direction: dir})
}

// rectCells lists the w×h rectangle at (x,y) in row-major order.
func rectCells(x, y, w, h int) []Point {
	cells := make([]Point, 0, w*h)
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			cells = append(cells, Point{X: cx, Y: cy})
		}
	}
	return cells
}

// Package world provides dungeon topology generation: room placement along a
// primary path with static rooms and offshoot branches.
package world

import "fmt"

// Point is an integer grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Adjacent returns true if p and q share an edge.
func (p Point) Adjacent(q Point) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in a fixed order.
var Directions = [4]Direction{North, South, East, West}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Delta returns the unit step for the direction. North is -y.
func (d Direction) Delta() Point {
	switch d {
	case North:
		return Point{0, -1}
	case South:
		return Point{0, 1}
	case East:
		return Point{1, 0}
	default:
		return Point{-1, 0}
	}
}

// String returns the lowercase direction name used on the wire.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseDirection converts a wire name back into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "north":
		return North, nil
	case "south":
		return South, nil
	case "east":
		return East, nil
	case "west":
		return West, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if d < North || d > West {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

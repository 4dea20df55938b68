// Package preview provides an interactive terminal viewer for generated dungeons.
package preview

// Mode represents what the viewer overlays on the map.
type Mode int

const (
	// ModeMap shows the dungeon only.
	ModeMap Mode = iota
	// ModeInfo adds a status line with room and offshoot counts.
	ModeInfo
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMap:
		return "map"
	case ModeInfo:
		return "info"
	default:
		return "unknown"
	}
}

package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// DifficultyRamp maps room difficulty onto a colour gradient.
type DifficultyRamp struct {
	easy, hard colorful.Color
	max        int
}

// NewDifficultyRamp blends from easyHex at difficulty 0 to hardHex at max.
func NewDifficultyRamp(easyHex, hardHex string, max int) (DifficultyRamp, error) {
	easy, err := colorful.Hex(easyHex)
	if err != nil {
		return DifficultyRamp{}, fmt.Errorf("invalid easy colour %s: %w", easyHex, err)
	}
	hard, err := colorful.Hex(hardHex)
	if err != nil {
		return DifficultyRamp{}, fmt.Errorf("invalid hard colour %s: %w", hardHex, err)
	}
	if max < 1 {
		max = 1
	}
	return DifficultyRamp{easy: easy, hard: hard, max: max}, nil
}

// MustDifficultyRamp is NewDifficultyRamp that panics on error.
func MustDifficultyRamp(easyHex, hardHex string, max int) DifficultyRamp {
	ramp, err := NewDifficultyRamp(easyHex, hardHex, max)
	if err != nil {
		panic(err)
	}
	return ramp
}

// Color returns the tcell colour for a difficulty, clamped to the ramp.
func (r DifficultyRamp) Color(difficulty int) tcell.Color {
	var c colorful.Color
	switch t := float64(difficulty) / float64(r.max); {
	case t <= 0:
		c = r.easy
	case t >= 1:
		c = r.hard
	default:
		c = r.easy.BlendLab(r.hard, t).Clamped()
	}
	red, green, blue := c.RGB255()
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}

package beamfight

import (
	"math"

	"github.com/vovakirdan/beamfight/internal/core"
)

// Direction is one of the eight facings the player can take.
type Direction int

const (
	DirRight Direction = iota
	DirUpRight
	DirUp
	DirUpLeft
	DirLeft
	DirDownLeft
	DirDown
	DirDownRight

	numDirections = 8
)

// unitVectors holds each direction in screen coordinates (y grows downward).
var unitVectors = [numDirections]core.Vec{
	DirRight:     {X: 1, Y: 0},
	DirUpRight:   {X: 1, Y: -1},
	DirUp:        {X: 0, Y: -1},
	DirUpLeft:    {X: -1, Y: -1},
	DirLeft:      {X: -1, Y: 0},
	DirDownLeft:  {X: -1, Y: 1},
	DirDown:      {X: 0, Y: 1},
	DirDownRight: {X: 1, Y: 1},
}

// Unit returns the direction as a vector with components in {-1, 0, 1}.
func (d Direction) Unit() core.Vec {
	return unitVectors[d]
}

// Degrees returns the counter-clockwise screen angle of the direction.
func (d Direction) Degrees() float64 {
	return vecDegrees(d.Unit())
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirUpRight:
		return "up-right"
	case DirUp:
		return "up"
	case DirUpLeft:
		return "up-left"
	case DirLeft:
		return "left"
	case DirDownLeft:
		return "down-left"
	case DirDown:
		return "down"
	case DirDownRight:
		return "down-right"
	default:
		return "unknown"
	}
}

// DirectionOf maps a non-zero movement vector to its direction.
// Returns false for the zero vector.
func DirectionOf(v core.Vec) (Direction, bool) {
	if v.IsZero() {
		return 0, false
	}
	unit := core.Vec{X: sign(v.X), Y: sign(v.Y)}
	for d, u := range unitVectors {
		if u == unit {
			return Direction(d), true
		}
	}
	return 0, false
}

// vecDegrees returns atan2(-vy, vx) in degrees: the angle a screen-space
// vector makes with the positive x axis, counter-clockwise.
func vecDegrees(v core.Vec) float64 {
	return math.Atan2(float64(-v.Y), float64(v.X)) * 180 / math.Pi
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

package beamfight

import (
	"math/rand"

	"github.com/vovakirdan/beamfight/internal/core"
)

// Bomb is a projectile that bounces around the play area.
type Bomb struct {
	rect   core.Rect
	vel    core.Vec
	visual core.Visual
}

// newBomb places a bomb of the given radius with its center drawn uniformly
// from [0, w]×[0, h], moving diagonally down-right at speed.
func newBomb(v core.Visual, radius, speed int, rng *rand.Rand, w, h int) *Bomb {
	cx, cy := rng.Intn(w+1), rng.Intn(h+1)
	return &Bomb{
		rect:   core.NewRect(0, 0, 2*radius, 2*radius).WithCenter(cx, cy),
		vel:    core.Vec{X: speed, Y: speed},
		visual: v,
	}
}

// Update reflects the velocity on every axis where the bomb currently sticks
// out of the play area, then moves. The reflecting tick still moves, so the
// bomb comes back in on the following ticks.
func (b *Bomb) Update(w, h int) {
	horizontal, vertical := core.Contained(b.rect, w, h)
	if !horizontal {
		b.vel.X = -b.vel.X
	}
	if !vertical {
		b.vel.Y = -b.vel.Y
	}
	b.rect = b.rect.Move(b.vel)
}

// Rect returns the bomb's bounding rectangle.
func (b *Bomb) Rect() core.Rect {
	return b.rect
}

// Velocity returns the per-tick displacement.
func (b *Bomb) Velocity() core.Vec {
	return b.vel
}

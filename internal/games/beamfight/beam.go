package beamfight

import "github.com/vovakirdan/beamfight/internal/core"

// Beam travels in a straight line in the direction the player faced when firing.
// It keeps no reference to the player.
type Beam struct {
	rect   core.Rect
	vel    core.Vec
	visual core.Visual
}

// newBeam fires a beam from the player's current heading.
//
// The spawn center is the player's center offset by the player's origin
// scaled by the heading over divisor, per axis, truncated toward zero.
func newBeam(p *Player, s *Sprites, divisor int) *Beam {
	vel := p.Heading()
	visual := s.Beam[p.Facing()]
	w, h := visual.Size()

	pcx, pcy := p.rect.Center()
	cx := int(float64(pcx) + float64(p.rect.X*vel.X)/float64(divisor))
	cy := int(float64(pcy) + float64(p.rect.Y*vel.Y)/float64(divisor))

	return &Beam{
		rect:   core.NewRect(0, 0, w, h).WithCenter(cx, cy),
		vel:    vel,
		visual: visual,
	}
}

// Update moves the beam by its velocity. Beams never bounce.
func (b *Beam) Update() {
	b.rect = b.rect.Move(b.vel)
}

// Rect returns the beam's bounding rectangle.
func (b *Beam) Rect() core.Rect {
	return b.rect
}

// Velocity returns the per-tick displacement.
func (b *Beam) Velocity() core.Vec {
	return b.vel
}

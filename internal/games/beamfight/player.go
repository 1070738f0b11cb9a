package beamfight

import "github.com/vovakirdan/beamfight/internal/core"

// PlayerVisual selects which sprite family the player shows.
type PlayerVisual int

const (
	PlayerVisualFacing PlayerVisual = iota // Sprite for the current facing
	PlayerVisualHit                        // Shown after destroying a bomb
	PlayerVisualDead                       // Shown on game over
)

// directionKeys lists the recognized movement actions and their unit deltas.
var directionKeys = []struct {
	action core.Action
	delta  core.Vec
}{
	{core.ActionUp, core.Vec{X: 0, Y: -1}},
	{core.ActionDown, core.Vec{X: 0, Y: 1}},
	{core.ActionLeft, core.Vec{X: -1, Y: 0}},
	{core.ActionRight, core.Vec{X: 1, Y: 0}},
}

// Player is the controlled character.
type Player struct {
	rect    core.Rect
	facing  Direction
	heading core.Vec // Last non-zero combined movement vector
	visual  core.Visual
	step    int
	sprites *Sprites
}

// newPlayer creates a right-facing player centered at (cx, cy).
// The bounding rectangle takes the right-facing sprite's size and never changes.
func newPlayer(s *Sprites, cx, cy, step int) *Player {
	w, h := s.Player[DirRight].Size()
	return &Player{
		rect:    core.NewRect(0, 0, w, h).WithCenter(cx, cy),
		facing:  DirRight,
		heading: core.Vec{X: step, Y: 0},
		visual:  s.Player[DirRight],
		step:    step,
		sprites: s,
	}
}

// Update moves the player by the sum of all held direction keys.
// A move that would leave the w×h play area is reverted. A non-zero move
// also turns the player to face it.
func (p *Player) Update(in core.InputFrame, w, h int) {
	var sum core.Vec
	for _, k := range directionKeys {
		if in.Has(k.action) {
			sum.X += k.delta.X * p.step
			sum.Y += k.delta.Y * p.step
		}
	}

	p.rect = p.rect.Move(sum)
	if horizontal, vertical := core.Contained(p.rect, w, h); !horizontal || !vertical {
		p.rect = p.rect.Move(sum.Neg())
	}

	if d, ok := DirectionOf(sum); ok {
		p.facing = d
		p.heading = sum
		p.visual = p.sprites.Player[d]
	}
}

// SetVisual swaps the displayed sprite. Hit and dead sprites stay until the
// player next moves.
func (p *Player) SetVisual(v PlayerVisual) {
	switch v {
	case PlayerVisualHit:
		p.visual = p.sprites.PlayerHit
	case PlayerVisualDead:
		p.visual = p.sprites.PlayerDead
	default:
		p.visual = p.sprites.Player[p.facing]
	}
}

// Rect returns the player's bounding rectangle.
func (p *Player) Rect() core.Rect {
	return p.rect
}

// Facing returns the direction of the last non-zero move.
func (p *Player) Facing() Direction {
	return p.facing
}

// Heading returns the last non-zero combined movement vector.
func (p *Player) Heading() core.Vec {
	return p.heading
}

// Visual returns the sprite currently shown.
func (p *Player) Visual() core.Visual {
	return p.visual
}

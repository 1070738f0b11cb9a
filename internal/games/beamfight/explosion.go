package beamfight

import "github.com/vovakirdan/beamfight/internal/core"

// Explosion is a short-lived animation left where a bomb was destroyed.
type Explosion struct {
	rect     core.Rect
	life     int
	variants *[4]core.Visual
	visual   core.Visual
}

func newExplosion(cx, cy int, variants *[4]core.Visual, lifetime int) *Explosion {
	w, h := variants[0].Size()
	return &Explosion{
		rect:     core.NewRect(0, 0, w, h).WithCenter(cx, cy),
		life:     lifetime,
		variants: variants,
		visual:   variants[0],
	}
}

// Update counts one tick of life down and advances the animation.
// At zero life the last frame is kept; the game prunes the explosion.
func (e *Explosion) Update() {
	e.life--
	if e.life > 0 {
		e.visual = e.variants[e.life%4]
	}
}

// Expired reports whether the explosion can be pruned.
func (e *Explosion) Expired() bool {
	return e.life <= 0
}

// Life returns the remaining ticks.
func (e *Explosion) Life() int {
	return e.life
}

// Rect returns the explosion's bounding rectangle.
func (e *Explosion) Rect() core.Rect {
	return e.rect
}

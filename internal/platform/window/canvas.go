package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/beamfight/internal/core"
)

// canvas draws visuals onto the screen image for one frame.
type canvas struct {
	screen *ebiten.Image
	op     ebiten.DrawImageOptions
}

func (c *canvas) DrawImage(v core.Visual, x, y int) {
	c.op.GeoM.Reset()
	c.op.GeoM.Translate(float64(x), float64(y))
	c.screen.DrawImage(imageOf(v), &c.op)
}

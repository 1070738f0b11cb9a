package tui

import (
	"github.com/vovakirdan/beamfight/internal/assets"
	"github.com/vovakirdan/beamfight/internal/core"
)

// canvas scales play-area pixels onto a rectangle of screen cells.
type canvas struct {
	screen *core.Screen
	area   core.Rect // Cells the play area maps onto
	playW  int
	playH  int
}

func newCanvas(screen *core.Screen, area core.Rect, playW, playH int) *canvas {
	return &canvas{screen: screen, area: area, playW: playW, playH: playH}
}

// cellX maps a play-area x coordinate to a screen column.
func (c *canvas) cellX(px int) int {
	return c.area.X + floorDiv(px*c.area.W, c.playW)
}

// cellY maps a play-area y coordinate to a screen row.
func (c *canvas) cellY(py int) int {
	return c.area.Y + floorDiv(py*c.area.H, c.playH)
}

// set writes one cell, clipped to the play area.
func (c *canvas) set(x, y int, r rune, col core.Color) {
	if !c.area.Contains(x, y) {
		return
	}
	c.screen.SetCell(x, y, core.Cell{Rune: r, Color: col})
}

func (c *canvas) DrawImage(v core.Visual, x, y int) {
	g := v.(*glyph)

	x0, y0 := c.cellX(x), c.cellY(y)
	x1, y1 := c.cellX(x+g.w-1), c.cellY(y+g.h-1)
	cx, cy := c.cellX(x+g.w/2), c.cellY(y+g.h/2)

	switch {
	case g.kind == glyphText:
		for i, r := range []rune(g.text) {
			c.set(x0+i, y0, r, g.color)
		}
	case g.kind == glyphSprite && g.role == assets.RoleBackground:
		c.drawStars(x0, y0, x1, y1, g.color)
	case g.kind == glyphSprite && g.role == assets.RoleBeam:
		c.drawLine(x0, y0, x1, y1, cx, cy, g)
	default:
		c.set(cx, cy, g.symbol(), g.color)
	}
}

// drawLine draws a beam across its footprint along its heading.
func (c *canvas) drawLine(x0, y0, x1, y1, cx, cy int, g *glyph) {
	r := g.symbol()
	switch r {
	case '─':
		for x := x0; x <= x1; x++ {
			c.set(x, cy, r, g.color)
		}
	case '│':
		for y := y0; y <= y1; y++ {
			c.set(cx, y, r, g.color)
		}
	default:
		n := max(x1-x0, y1-y0)
		if n == 0 {
			c.set(cx, cy, r, g.color)
			return
		}
		for i := 0; i <= n; i++ {
			x := x0 + i*(x1-x0)/n
			y := y0 + i*(y1-y0)/n
			if r == '╱' {
				y = y1 - i*(y1-y0)/n
			}
			c.set(x, y, r, g.color)
		}
	}
}

// drawStars scatters a fixed pattern of dim dots.
func (c *canvas) drawStars(x0, y0, x1, y1 int, col core.Color) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if (x*7+y*13)%37 == 0 {
				c.set(x, y, '·', col)
			}
		}
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

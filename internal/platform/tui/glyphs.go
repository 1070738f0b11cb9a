package tui

import (
	"image/color"
	"math"

	"github.com/vovakirdan/beamfight/internal/assets"
	"github.com/vovakirdan/beamfight/internal/core"
)

// glyphKind selects how a glyph is drawn.
type glyphKind int

const (
	glyphSprite glyphKind = iota // Catalog sprite, drawn by role
	glyphCircle                  // Filled circle
	glyphText                    // Text line
)

// glyph is the terminal frontend's core.Visual. It keeps the play-area pixel
// size the game computes with, plus enough orientation to pick runes.
type glyph struct {
	kind    glyphKind
	role    assets.Role
	w, h    int
	heading float64 // Degrees counter-clockwise the sprite points at
	flipH   bool
	flipV   bool
	color   core.Color
	text    string
}

func (g *glyph) Size() (int, int) {
	return g.w, g.h
}

// baseHeadings is where each role's source image points.
var baseHeadings = map[assets.Role]float64{
	assets.RoleBird: 180,
	assets.RoleBeam: 0,
}

// Assets builds glyphs from the sprite catalog.
type Assets struct {
	catalog  *assets.Catalog
	fontSize int
}

// NewAssets creates the glyph source. fontSize sets the pixel size of text.
func NewAssets(catalog *assets.Catalog, fontSize int) *Assets {
	return &Assets{catalog: catalog, fontSize: fontSize}
}

// LoadImage returns the glyph for a catalog sprite. Files are never read.
func (a *Assets) LoadImage(name string) (core.Visual, error) {
	s, err := a.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	return &glyph{
		kind:    glyphSprite,
		role:    s.Role,
		w:       s.W,
		h:       s.H,
		heading: baseHeadings[s.Role],
		color:   roleColors[s.Role],
	}, nil
}

// RotateScale turns the glyph's heading and resizes its footprint.
func (a *Assets) RotateScale(v core.Visual, degrees, scale float64) core.Visual {
	g := *v.(*glyph)
	g.w, g.h = core.RotatedBounds(g.w, g.h, degrees, scale)
	g.heading += degrees
	return &g
}

// Flip mirrors the glyph's heading.
func (a *Assets) Flip(v core.Visual, horizontal, vertical bool) core.Visual {
	g := *v.(*glyph)
	if horizontal {
		g.heading = 180 - g.heading
		g.flipH = !g.flipH
	}
	if vertical {
		g.heading = -g.heading
		g.flipV = !g.flipV
	}
	return &g
}

// Circle returns a round glyph in the nearest palette color.
func (a *Assets) Circle(radius int, c color.RGBA) core.Visual {
	return &glyph{kind: glyphCircle, w: 2 * radius, h: 2 * radius, color: core.NearestColor(c)}
}

// RenderText returns a text glyph in the nearest palette color.
func (a *Assets) RenderText(text string, c color.RGBA) core.Visual {
	n := len([]rune(text))
	return &glyph{
		kind:  glyphText,
		w:     n * a.fontSize / 2,
		h:     a.fontSize,
		color: core.NearestColor(c),
		text:  text,
	}
}

// roleColors are the palette colors for catalog sprites.
var roleColors = map[assets.Role]core.Color{
	assets.RoleBird:       core.ColorBrightYellow,
	assets.RoleBirdHit:    core.ColorBrightGreen,
	assets.RoleBirdDead:   core.ColorGray,
	assets.RoleBeam:       core.ColorBrightCyan,
	assets.RoleExplosion:  core.ColorOrange,
	assets.RoleBackground: core.ColorGray,
}

// arrows are indexed by heading in 45° steps, counter-clockwise from right.
var arrows = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// beamRunes are indexed by heading in 45° steps modulo 180°.
var beamRunes = [4]rune{'─', '╱', '│', '╲'}

// explosionRunes are indexed by the flip combination.
var explosionRunes = [4]rune{'✶', '✷', '✸', '✹'}

// octant quantizes a heading to one of eight 45° steps.
func octant(heading float64) int {
	n := int(math.Round(heading/45)) % 8
	if n < 0 {
		n += 8
	}
	return n
}

// symbol returns the single rune that stands for the glyph.
func (g *glyph) symbol() rune {
	switch g.kind {
	case glyphCircle:
		return '●'
	case glyphText:
		return ' '
	}

	switch g.role {
	case assets.RoleBird:
		return arrows[octant(g.heading)]
	case assets.RoleBirdHit:
		return '☻'
	case assets.RoleBirdDead:
		return '✖'
	case assets.RoleBeam:
		return beamRunes[octant(g.heading)%4]
	case assets.RoleExplosion:
		i := 0
		if g.flipH {
			i++
		}
		if g.flipV {
			i += 2
		}
		return explosionRunes[i]
	case assets.RoleBackground:
		return '·'
	}
	return '?'
}

package window

import (
	"fmt"
	"image/color"
	_ "image/gif"  // Explosion frames
	_ "image/jpeg" // Backgrounds
	_ "image/png"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/beamfight/internal/assets"
	"github.com/vovakirdan/beamfight/internal/core"
)

// sprite is the window frontend's core.Visual.
type sprite struct {
	img *ebiten.Image
}

func (s *sprite) Size() (int, int) {
	return s.img.Bounds().Dx(), s.img.Bounds().Dy()
}

// imageOf unwraps a visual produced by Assets.
func imageOf(v core.Visual) *ebiten.Image {
	return v.(*sprite).img
}

// Assets loads and transforms GPU images.
// With an empty dir every sprite is drawn procedurally from the catalog.
type Assets struct {
	dir     string
	catalog *assets.Catalog
	face    font.Face
}

// NewAssets creates the asset source. fontSize is in points at 72 DPI.
func NewAssets(dir string, catalog *assets.Catalog, fontSize int) (*Assets, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    float64(fontSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}

	return &Assets{dir: dir, catalog: catalog, face: face}, nil
}

// LoadImage reads name from the asset directory, or draws its builtin stand-in.
func (a *Assets) LoadImage(name string) (core.Visual, error) {
	if a.dir == "" {
		s, err := a.catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		return &sprite{img: drawBuiltin(s)}, nil
	}

	img, _, err := ebitenutil.NewImageFromFile(filepath.Join(a.dir, name))
	if err != nil {
		return nil, err
	}
	return &sprite{img: img}, nil
}

// RotateScale rotates v counter-clockwise about its center and scales it,
// onto a new image sized to the rotated bounding box.
func (a *Assets) RotateScale(v core.Visual, degrees, scale float64) core.Visual {
	src := imageOf(v)
	w, h := v.Size()
	nw, nh := core.RotatedBounds(w, h, degrees, scale)

	dst := newImage(nw, nh)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(-degrees * math.Pi / 180) // Screen y points down
	op.GeoM.Translate(float64(nw)/2, float64(nh)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)

	return &sprite{img: dst}
}

// Flip mirrors v horizontally and/or vertically.
func (a *Assets) Flip(v core.Visual, horizontal, vertical bool) core.Visual {
	src := imageOf(v)
	w, h := v.Size()

	sx, sy, tx, ty := 1.0, 1.0, 0.0, 0.0
	if horizontal {
		sx, tx = -1, float64(w)
	}
	if vertical {
		sy, ty = -1, float64(h)
	}

	dst := newImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(tx, ty)
	dst.DrawImage(src, op)

	return &sprite{img: dst}
}

// Circle draws a filled circle on a transparent square.
func (a *Assets) Circle(radius int, c color.RGBA) core.Visual {
	dst := newImage(2*radius, 2*radius)
	r := float32(radius)
	vector.DrawFilledCircle(dst, r, r, r, c, true)
	return &sprite{img: dst}
}

// RenderText draws text tightly onto a new image.
func (a *Assets) RenderText(s string, c color.RGBA) core.Visual {
	bounds := text.BoundString(a.face, s)
	dst := newImage(bounds.Dx(), bounds.Dy())
	text.Draw(dst, s, a.face, -bounds.Min.X, -bounds.Min.Y, c)
	return &sprite{img: dst}
}

// newImage creates an image, never smaller than 1×1.
func newImage(w, h int) *ebiten.Image {
	return ebiten.NewImage(max(w, 1), max(h, 1))
}

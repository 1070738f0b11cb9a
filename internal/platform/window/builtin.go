package window

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/beamfight/internal/assets"
)

// Builtin sprite palette.
var (
	birdBody   = color.RGBA{R: 250, G: 200, B: 40, A: 255}
	birdWing   = color.RGBA{R: 230, G: 130, B: 20, A: 255}
	birdHit    = color.RGBA{R: 90, G: 220, B: 90, A: 255}
	birdDead   = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	beak       = color.RGBA{R: 240, G: 90, B: 20, A: 255}
	eyeWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	eyeBlack   = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	beamGlow   = color.RGBA{R: 60, G: 200, B: 255, A: 160}
	beamCore   = color.RGBA{R: 230, G: 250, B: 255, A: 255}
	blastOuter = color.RGBA{R: 240, G: 90, B: 20, A: 220}
	blastInner = color.RGBA{R: 255, G: 220, B: 60, A: 255}
	blastSmoke = color.RGBA{R: 120, G: 40, B: 30, A: 200}
	skyTop     = color.RGBA{R: 10, G: 14, B: 40, A: 255}
	skyBottom  = color.RGBA{R: 40, G: 60, B: 110, A: 255}
	star       = color.RGBA{R: 230, G: 230, B: 255, A: 255}
)

// drawBuiltin renders the procedural stand-in for a catalog sprite.
func drawBuiltin(s assets.Sprite) *ebiten.Image {
	img := newImage(s.W, s.H)
	w, h := float32(s.W), float32(s.H)

	switch s.Role {
	case assets.RoleBird:
		drawBird(img, w, h, birdBody, false)
	case assets.RoleBirdHit:
		drawBird(img, w, h, birdHit, false)
	case assets.RoleBirdDead:
		drawBird(img, w, h, birdDead, true)
	case assets.RoleBeam:
		drawBeam(img, w, h)
	case assets.RoleExplosion:
		drawExplosion(img, w, h)
	case assets.RoleBackground:
		drawBackground(img, w, h)
	}

	return img
}

// drawBird draws a round bird looking left.
func drawBird(img *ebiten.Image, w, h float32, body color.RGBA, dead bool) {
	cx, cy := w*0.55, h*0.55
	vector.DrawFilledCircle(img, cx, cy, h*0.38, body, true)
	vector.DrawFilledCircle(img, cx+w*0.12, cy+h*0.05, h*0.18, birdWing, true)

	// Beak
	vector.StrokeLine(img, w*0.22, h*0.45, w*0.04, h*0.52, h*0.08, beak, true)
	vector.StrokeLine(img, w*0.22, h*0.58, w*0.04, h*0.52, h*0.08, beak, true)

	ex, ey, er := w*0.38, h*0.38, h*0.09
	if dead {
		vector.StrokeLine(img, ex-er, ey-er, ex+er, ey+er, 2, eyeBlack, true)
		vector.StrokeLine(img, ex-er, ey+er, ex+er, ey-er, 2, eyeBlack, true)
		return
	}
	vector.DrawFilledCircle(img, ex, ey, er, eyeWhite, true)
	vector.DrawFilledCircle(img, ex-er*0.3, ey, er*0.5, eyeBlack, true)
}

// drawBeam draws a horizontal energy bolt with a bright core.
func drawBeam(img *ebiten.Image, w, h float32) {
	vector.DrawFilledRect(img, 0, h*0.15, w, h*0.7, beamGlow, true)
	vector.DrawFilledRect(img, w*0.05, h*0.35, w*0.9, h*0.3, beamCore, true)
	vector.DrawFilledCircle(img, w-h*0.35, h/2, h*0.35, beamCore, true)
}

// drawExplosion draws an off-center burst so its mirrored frames differ.
func drawExplosion(img *ebiten.Image, w, h float32) {
	vector.DrawFilledCircle(img, w*0.5, h*0.5, w*0.42, blastOuter, true)
	vector.DrawFilledCircle(img, w*0.38, h*0.4, w*0.24, blastInner, true)
	vector.DrawFilledCircle(img, w*0.72, h*0.7, w*0.14, blastSmoke, true)
	vector.DrawFilledCircle(img, w*0.25, h*0.75, w*0.08, blastSmoke, true)
}

// drawBackground draws a night-sky gradient with a fixed star field.
func drawBackground(img *ebiten.Image, w, h float32) {
	const bands = 32
	for i := 0; i < bands; i++ {
		t := float32(i) / (bands - 1)
		c := color.RGBA{
			R: lerp8(skyTop.R, skyBottom.R, t),
			G: lerp8(skyTop.G, skyBottom.G, t),
			B: lerp8(skyTop.B, skyBottom.B, t),
			A: 255,
		}
		vector.DrawFilledRect(img, 0, h*float32(i)/bands, w, h/bands+1, c, false)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 160; i++ {
		x, y := rng.Float32()*w, rng.Float32()*h
		vector.DrawFilledCircle(img, x, y, 0.6+rng.Float32()*1.4, star, true)
	}
}

func lerp8(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*t)
}

package core

import "image/color"

// Visual is an opaque drawable handle produced by a frontend's Assets.
// The game only needs its size to derive bounding rectangles.
type Visual interface {
	Size() (w, h int)
}

// Assets creates and transforms visuals. Each frontend provides its own
// implementation (GPU images, terminal glyphs).
type Assets interface {
	// LoadImage loads a named image resource.
	LoadImage(name string) (Visual, error)

	// RotateScale rotates v counter-clockwise by degrees and scales it.
	// The result is sized to the rotated bounding box.
	RotateScale(v Visual, degrees, scale float64) Visual

	// Flip mirrors v horizontally and/or vertically.
	Flip(v Visual, horizontal, vertical bool) Visual

	// Circle creates a filled circle of the given radius and color.
	Circle(radius int, c color.RGBA) Visual

	// RenderText renders a line of text with the frontend's font.
	RenderText(text string, c color.RGBA) Visual
}

// Canvas is the drawing target for one frame.
type Canvas interface {
	// DrawImage draws v with its top-left corner at (x, y) in play-area pixels.
	DrawImage(v Visual, x, y int)
}

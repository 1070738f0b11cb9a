package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// paletteRGB approximates each palette entry for nearest-color lookups.
var paletteRGB = map[Color]color.RGBA{
	ColorRed:           {205, 0, 0, 255},
	ColorGreen:         {0, 205, 0, 255},
	ColorYellow:        {205, 205, 0, 255},
	ColorBlue:          {0, 0, 238, 255},
	ColorMagenta:       {205, 0, 205, 255},
	ColorCyan:          {0, 205, 205, 255},
	ColorWhite:         {229, 229, 229, 255},
	ColorBrightRed:     {255, 0, 0, 255},
	ColorBrightGreen:   {0, 255, 0, 255},
	ColorBrightYellow:  {255, 255, 0, 255},
	ColorBrightBlue:    {92, 92, 255, 255},
	ColorBrightMagenta: {255, 0, 255, 255},
	ColorBrightCyan:    {0, 255, 255, 255},
	ColorBrightWhite:   {255, 255, 255, 255},
	ColorOrange:        {255, 135, 0, 255},
	ColorGray:          {138, 138, 138, 255},
}

// NearestColor maps an RGBA value to the closest palette color.
func NearestColor(c color.RGBA) Color {
	best := ColorDefault
	bestDist := -1
	for pc := ColorRed; pc <= ColorGray; pc++ {
		p := paletteRGB[pc]
		dr := int(c.R) - int(p.R)
		dg := int(c.G) - int(p.G)
		db := int(c.B) - int(p.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = pc, d
		}
	}
	return best
}

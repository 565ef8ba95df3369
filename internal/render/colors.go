package render

import (
	"image/color"

	"bananalike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

var (
	floorFG = tcell.NewRGBColor(128, 128, 128)
	wallFG  = tcell.NewRGBColor(0, 255, 255)
	tileBG  = tcell.ColorBlack
)

// TileStyle returns the glyph and colors used to draw a tile kind.
func TileStyle(k gamemap.TileKind) (glyph rune, fg, bg tcell.Color) {
	if k == gamemap.TileWall {
		return '#', wallFG, tileBG
	}
	return '.', floorFG, tileBG
}

// RGBA converts a tcell color to an opaque RGBA value. Colors without an RGB
// equivalent (ColorDefault, ColorReset) become black.
func RGBA(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}

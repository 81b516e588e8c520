// Package render holds the drawing helpers shared by the front ends: the cell palette and
// the mapping from grid coordinates to pixels.
package render

import (
	"fmt"
	"image/color"

	"github.com/plus3/blockfall/tetris"
)

// Swatch is one palette entry.
type Swatch struct {
	Name  string
	Color color.RGBA
}

// Palette maps color ids, as stored in board cells and pieces, to display colors.
// Id 0 is the background grey; ids 1 to tetris.ColorCount are piece colors.
type Palette [tetris.ColorCount + 1]Swatch

// DefaultPalette uses the named X11 colors of the classic layout.
var DefaultPalette = Palette{
	{"grey", color.RGBA{190, 190, 190, 255}},
	{"red", color.RGBA{255, 0, 0, 255}},
	{"orange", color.RGBA{255, 165, 0, 255}},
	{"yellow", color.RGBA{255, 255, 0, 255}},
	{"lawngreen", color.RGBA{124, 252, 0, 255}},
	{"dodgerblue", color.RGBA{30, 144, 255, 255}},
	{"blue", color.RGBA{0, 0, 255, 255}},
}

// Color returns the display color for id. Unknown ids fall back to the background.
func (p *Palette) Color(id uint8) color.RGBA {
	if int(id) < len(p) {
		return p[id].Color
	}
	return p[0].Color
}

func (p *Palette) Name(id uint8) string {
	if int(id) < len(p) {
		return p[id].Name
	}
	return fmt.Sprintf("Color(%d)", id)
}

// Faded returns c with its alpha scaled by alpha, clamped to [0, 1].
func Faded(c color.RGBA, alpha float32) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

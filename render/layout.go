package render

// DefaultFactor is the side of one cell, in pixels.
const DefaultFactor = 47

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H float32
}

// Layout converts grid coordinates to pixels for a field of Width by Height cells.
type Layout struct {
	Width, Height int
	Factor        int
}

// NewLayout returns a layout for a width by height field. A non-positive factor selects
// DefaultFactor.
func NewLayout(width, height, factor int) Layout {
	if factor <= 0 {
		factor = DefaultFactor
	}
	return Layout{Width: width, Height: height, Factor: factor}
}

// Size returns the pixel size of the whole field.
func (l Layout) Size() (int, int) {
	return l.Width * l.Factor, l.Height * l.Factor
}

// Cell returns the pixel rectangle covered by grid cell (x, y).
func (l Layout) Cell(x, y int) Rect {
	f := float32(l.Factor)
	return Rect{X: float32(x) * f, Y: float32(y) * f, W: f, H: f}
}

// OverZoneY returns the y pixel of the line separating the over zone, the rows above
// startingRow, from the rest of the field.
func (l Layout) OverZoneY(startingRow int) float32 {
	return float32(startingRow * l.Factor)
}

// At returns the grid cell containing pixel (px, py) and whether it lies inside the field.
func (l Layout) At(px, py int) (int, int, bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y := px/l.Factor, py/l.Factor
	if x >= l.Width || y >= l.Height {
		return 0, 0, false
	}
	return x, y, true
}

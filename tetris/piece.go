package tetris

import "fmt"

// Point is an absolute board coordinate.
type Point struct {
	X, Y int
}

// Piece is a spawned shape: its kind, current orientation, anchor and color.
// Pieces are small values; copying one snapshots it.
type Piece struct {
	Kind        Kind
	Orientation int
	X, Y        int
	Color       uint8
}

// Shape returns the catalog entry of the piece's kind.
func (p Piece) Shape() *Shape {
	return Catalog(p.Kind)
}

// Squares returns the absolute cells covered by the piece.
func (p Piece) Squares() [4]Point {
	var squares [4]Point
	for i, off := range p.Shape().Offsets(p.Orientation) {
		squares[i] = Point{X: p.X + off.X, Y: p.Y + off.Y}
	}
	return squares
}

// InsideLimits reports whether every cell lies in [0,width) x [0,height).
func (p Piece) InsideLimits(width, height int) bool {
	for _, sq := range p.Squares() {
		if sq.X < 0 || sq.X >= width || sq.Y < 0 || sq.Y >= height {
			return false
		}
	}
	return true
}

// Collides reports whether any cell overlaps an occupied board cell, the sentinel row included.
func (p Piece) Collides(b *Board) bool {
	for _, sq := range p.Squares() {
		if b.Occupied(sq.X, sq.Y) {
			return true
		}
	}
	return false
}

// Shift translates the anchor by (dx, dy) without validation.
func (p *Piece) Shift(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Rotate advances the orientation by direction, +1 or -1, modulo the orientation count.
func (p *Piece) Rotate(direction int) {
	n := p.Shape().Orientations()
	p.Orientation = ((p.Orientation+direction)%n + n) % n
}

// Lock writes the piece color into the board at each of its cells and returns how many
// cells were written. Cells outside the visible field, above row 0 in practice, are
// dropped so the sentinel row is never overwritten.
func (p Piece) Lock(b *Board) int {
	written := 0
	for _, sq := range p.Squares() {
		if sq.Y < 0 || sq.Y >= b.height || sq.X < 0 || sq.X >= b.width {
			continue
		}
		b.Set(sq.X, sq.Y, p.Color)
		written++
	}
	return written
}

func (p Piece) String() string {
	return fmt.Sprintf("%s@(%d,%d) r%d c%d", p.Kind, p.X, p.Y, p.Orientation, p.Color)
}

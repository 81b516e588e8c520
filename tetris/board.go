package tetris

// sentinel is the value stored in the floor row below the visible field.
const sentinel uint8 = 1

// Board is the matrix of locked cells. It holds width columns and height+1 rows; the
// extra row at index height is a permanently occupied floor.
type Board struct {
	width  int
	height int
	// cells is stored row major: cells[y*width+x].
	cells []uint8
}

// NewBoard creates an empty board with its sentinel row filled.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]uint8, width*(height+1)),
	}
	floor := b.row(height)
	for x := range floor {
		floor[x] = sentinel
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of visible rows, excluding the sentinel row.
func (b *Board) Height() int {
	return b.height
}

func (b *Board) row(y int) []uint8 {
	return b.cells[y*b.width : (y+1)*b.width]
}

// Get returns the color at (x, y). Callers must keep the coordinates inside the matrix.
func (b *Board) Get(x, y int) uint8 {
	return b.cells[y*b.width+x]
}

// Set stores a color at (x, y).
func (b *Board) Set(x, y int, color uint8) {
	b.cells[y*b.width+x] = color
}

// Occupied reports whether a piece cell at (x, y) would overlap something. Space above
// row 0 is open; space beside the matrix or below the sentinel row is not.
func (b *Board) Occupied(x, y int) bool {
	if y < 0 {
		return false
	}
	if x < 0 || x >= b.width || y > b.height {
		return true
	}
	return b.Get(x, y) != 0
}

// IsRowFull reports whether every cell of row y is non-zero.
func (b *Board) IsRowFull(y int) bool {
	for _, c := range b.row(y) {
		if c == 0 {
			return false
		}
	}
	return true
}

// IsRowEmpty reports whether every cell of row y is zero.
func (b *Board) IsRowEmpty(y int) bool {
	for _, c := range b.row(y) {
		if c != 0 {
			return false
		}
	}
	return true
}

// ClearRow zeroes row y.
func (b *Board) ClearRow(y int) {
	clear(b.row(y))
}

// CollapseAbove moves rows 0..y-1 down by one so that row r takes the contents of row r-1.
// Row 0 keeps whatever it held before the shift.
func (b *Board) CollapseAbove(y int) {
	for r := y; r > 0; r-- {
		copy(b.row(r), b.row(r-1))
	}
}

// ClearFullRows scans the visible rows top to bottom once, clearing each full row and
// collapsing the rows above it. It returns the cleared row indexes in scan order.
func (b *Board) ClearFullRows() []int {
	var cleared []int
	for y := 0; y < b.height; y++ {
		if b.IsRowFull(y) {
			b.ClearRow(y)
			b.CollapseAbove(y)
			cleared = append(cleared, y)
		}
	}
	return cleared
}

// Reset zeroes every row except the sentinel row.
func (b *Board) Reset() {
	clear(b.cells[:b.height*b.width])
}

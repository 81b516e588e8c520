package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestPieceSquares(t *testing.T) {
	p := tetris.Piece{Kind: tetris.KindT, X: 4, Y: 7, Color: 2}

	assert.Equal(t, [4]tetris.Point{{3, 7}, {4, 7}, {5, 7}, {4, 8}}, p.Squares())

	p.Rotate(1)
	assert.Equal(t, [4]tetris.Point{{4, 8}, {4, 7}, {4, 6}, {5, 7}}, p.Squares())
}

func TestPieceInsideLimits(t *testing.T) {
	tests := []struct {
		name  string
		piece tetris.Piece
		want  bool
	}{
		{"centered", tetris.Piece{Kind: tetris.KindT, X: 4, Y: 4}, true},
		{"left edge", tetris.Piece{Kind: tetris.KindT, X: 1, Y: 4}, true},
		{"past left edge", tetris.Piece{Kind: tetris.KindT, X: 0, Y: 4}, false},
		{"past right edge", tetris.Piece{Kind: tetris.KindO, X: 9, Y: 4}, false},
		{"above top", tetris.Piece{Kind: tetris.KindI, X: 4, Y: 0}, false},
		{"touching top", tetris.Piece{Kind: tetris.KindI, X: 4, Y: 1}, true},
		{"touching bottom", tetris.Piece{Kind: tetris.KindI, X: 4, Y: 17}, true},
		{"past bottom", tetris.Piece{Kind: tetris.KindI, X: 4, Y: 18}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.piece.InsideLimits(10, 20))
		})
	}
}

func TestPieceCollidesWithSentinel(t *testing.T) {
	b := tetris.NewBoard(10, 20)
	p := tetris.Piece{Kind: tetris.KindI, X: 4, Y: 17}

	assert.False(t, p.Collides(b))
	p.Shift(0, 1)
	assert.True(t, p.Collides(b), "the floor row stops downward motion")
}

func TestPieceCollidesWithLockedCell(t *testing.T) {
	b := tetris.NewBoard(10, 20)
	b.Set(5, 10, 3)
	p := tetris.Piece{Kind: tetris.KindO, X: 4, Y: 8}

	assert.False(t, p.Collides(b))
	p.Shift(0, 1)
	assert.True(t, p.Collides(b))
}

func TestPieceRotationCycles(t *testing.T) {
	for _, kind := range tetris.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			start := tetris.Piece{Kind: kind, X: 5, Y: 5, Color: 1}
			n := start.Shape().Orientations()

			for _, dir := range []int{1, -1} {
				p := start
				for i := 0; i < n; i++ {
					p.Rotate(dir)
				}
				assert.Equal(t, start.Orientation, p.Orientation)
				assert.Equal(t, start.Squares(), p.Squares())
			}
		})
	}
}

func TestPieceRotateWrapsBackwards(t *testing.T) {
	p := tetris.Piece{Kind: tetris.KindL}
	p.Rotate(-1)
	assert.Equal(t, 3, p.Orientation)

	o := tetris.Piece{Kind: tetris.KindO}
	o.Rotate(-1)
	assert.Equal(t, 0, o.Orientation)
}

func TestPieceLock(t *testing.T) {
	b := tetris.NewBoard(10, 20)
	p := tetris.Piece{Kind: tetris.KindS, Orientation: 2, X: 3, Y: 12, Color: 5}

	assert.Equal(t, 4, p.Lock(b))

	locked := 0
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Get(x, y) != 0 {
				locked++
			}
		}
	}
	assert.Equal(t, 4, locked)
	for _, sq := range p.Squares() {
		assert.Equal(t, uint8(5), b.Get(sq.X, sq.Y))
	}
}

func TestPieceLockDropsCellsAboveField(t *testing.T) {
	b := tetris.NewBoard(10, 20)
	p := tetris.Piece{Kind: tetris.KindI, X: 4, Y: 0, Color: 2}

	assert.Equal(t, 3, p.Lock(b))
	assert.Equal(t, uint8(2), b.Get(4, 0))
	assert.Equal(t, uint8(2), b.Get(4, 2))
}

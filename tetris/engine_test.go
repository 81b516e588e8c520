package tetris_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestEngine(t *testing.T, seed uint64) *tetris.Engine {
	t.Helper()
	e, err := tetris.NewEngine(10, 20, 3, tetris.WithSeed(seed))
	require.NoError(t, err)
	return e
}

func lockedCells(e *tetris.Engine) map[tetris.Point]uint8 {
	cells := map[tetris.Point]uint8{}
	b := e.Board()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if c := b.Get(x, y); c != 0 {
				cells[tetris.Point{X: x, Y: y}] = c
			}
		}
	}
	return cells
}

func lowestRow(p tetris.Piece) int {
	lowest := p.Squares()[0].Y
	for _, sq := range p.Squares() {
		lowest = max(lowest, sq.Y)
	}
	return lowest
}

func TestNewEngineRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		width, height, startingRow int
	}{
		{5, 20, 3},
		{10, 5, 3},
		{0, 0, 0},
		{10, 20, -1},
		{10, 20, 20},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d/%d", tt.width, tt.height, tt.startingRow), func(t *testing.T) {
			e, err := tetris.NewEngine(tt.width, tt.height, tt.startingRow)
			assert.Nil(t, e)
			assert.ErrorIs(t, err, tetris.ErrInvalidDimensions)
		})
	}
}

func TestNewEngine(t *testing.T) {
	e, err := tetris.NewEngine(6, 6, 0)
	require.NoError(t, err)

	assert.Equal(t, 6, e.Width())
	assert.Equal(t, 6, e.Height())
	assert.Equal(t, 0, e.StartingRow())
	assert.Equal(t, tetris.StatusRunning, e.Status())
	assert.Equal(t, 1, e.Stats().Games)
	assert.Empty(t, lockedCells(e))
}

func TestEngineSeedIsReproducible(t *testing.T) {
	a := newTestEngine(t, 99)
	b := newTestEngine(t, 99)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Current(), b.Current())
		assert.Equal(t, a.Next(), b.Next())
		a.Accelerate()
		b.Accelerate()
	}
}

func TestGameStepUntilLock(t *testing.T) {
	e := newTestEngine(t, 3)
	first := e.Current()
	next := e.Next()

	var locked tetris.Piece
	for i := 0; i < e.Height()+5; i++ {
		before := e.Current()
		over := e.GameStep()
		require.False(t, over)
		require.True(t, e.Board().IsRowFull(e.Height()), "sentinel row stays full")

		if e.Stats().Locked == 1 {
			locked = before
			break
		}
		after := before
		after.Shift(0, 1)
		require.Equal(t, after, e.Current(), "an unobstructed step moves the piece one row down")
	}
	require.Equal(t, 1, e.Stats().Locked, "the piece locks before running out of steps")

	assert.Equal(t, first.Kind, locked.Kind)
	assert.Equal(t, e.Height()-1, lowestRow(locked))
	cells := lockedCells(e)
	assert.Len(t, cells, 4)
	for _, sq := range locked.Squares() {
		assert.Less(t, sq.Y, e.Height())
		assert.Equal(t, locked.Color, cells[sq])
	}
	assert.Equal(t, next, e.Current(), "next piece is promoted")
}

func TestAccelerateRestsOnFloor(t *testing.T) {
	e := newTestEngine(t, 5)
	p := e.Current()
	dy := e.Height() - 1 - lowestRow(p)

	over := e.Accelerate()

	assert.False(t, over)
	assert.Equal(t, 1, e.Stats().Locked)
	cells := lockedCells(e)
	assert.Len(t, cells, 4)
	for _, sq := range p.Squares() {
		assert.Equal(t, p.Color, cells[tetris.Point{X: sq.X, Y: sq.Y + dy}])
	}
}

func TestLockCompletesRow(t *testing.T) {
	e := newTestEngine(t, 8)
	b := e.Board()
	p := e.Current()
	dy := e.Height() - 1 - lowestRow(p)
	bottom := e.Height() - 1

	landed := map[tetris.Point]bool{}
	for _, sq := range p.Squares() {
		landed[tetris.Point{X: sq.X, Y: sq.Y + dy}] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !landed[tetris.Point{X: x, Y: bottom}] {
			b.Set(x, bottom, 6)
		}
	}
	b.Set(0, 0, 2)
	require.False(t, b.IsRowFull(bottom))

	over := e.Accelerate()

	assert.True(t, over, "the marker in row 0 sits in the over-zone")
	assert.Equal(t, tetris.StatusOver, e.Status())
	assert.Equal(t, 1, e.Stats().RowsCleared)
	assert.False(t, b.IsRowFull(bottom))
	assert.Equal(t, uint8(2), b.Get(0, 0), "row 0 keeps its content after the collapse")
	assert.Equal(t, uint8(2), b.Get(0, 1))
	for sq := range landed {
		if sq.Y < bottom {
			assert.Equal(t, p.Color, b.Get(sq.X, sq.Y+1), "piece cells above the cleared row fall by one")
		}
	}
	assert.True(t, b.IsRowFull(e.Height()))
}

func TestRejectedShiftLeavesPieceUntouched(t *testing.T) {
	for _, dir := range []string{"left", "right"} {
		t.Run(dir, func(t *testing.T) {
			e := newTestEngine(t, 13)
			move := e.ShiftLeft
			if dir == "right" {
				move = e.ShiftRight
			}

			for i := 0; i < e.Width(); i++ {
				move()
			}
			atWall := e.Current()
			move()

			assert.Equal(t, atWall, e.Current())
			assert.True(t, atWall.InsideLimits(e.Width(), e.Height()))
			edge := 0
			if dir == "right" {
				edge = e.Width() - 1
			}
			touches := false
			for _, sq := range atWall.Squares() {
				touches = touches || sq.X == edge
			}
			assert.True(t, touches)
		})
	}
}

func TestShiftBlockedByLockedCells(t *testing.T) {
	e := newTestEngine(t, 21)
	b := e.Board()
	p := e.Current()
	for _, sq := range p.Squares() {
		if sq.X > 0 {
			b.Set(sq.X-1, sq.Y, 4)
		}
	}
	// Cells of the piece itself may have been marked when they sit next to each other.
	for _, sq := range p.Squares() {
		b.Set(sq.X, sq.Y, 0)
	}

	e.ShiftLeft()

	assert.Equal(t, p, e.Current())
}

func TestRotationKeepsStateConsistent(t *testing.T) {
	e := newTestEngine(t, 34)
	for i := 0; i < 60; i++ {
		before := e.Current()
		if i%2 == 0 {
			e.RotateLeft()
		} else {
			e.RotateRight()
		}
		after := e.Current()
		if after != before {
			assert.True(t, after.InsideLimits(e.Width(), e.Height()))
			assert.False(t, after.Collides(e.Board()))
			assert.Equal(t, before.X, after.X)
			assert.Equal(t, before.Y, after.Y)
		}
		if i%7 == 0 {
			e.Accelerate()
		}
	}
}

func TestRotateFullTurnRestoresPiece(t *testing.T) {
	e := newTestEngine(t, 55)
	for i := 0; i < 5; i++ {
		require.False(t, e.GameStep())
	}
	require.Equal(t, 0, e.Stats().Locked)

	start := e.Current()
	n := start.Shape().Orientations()

	for i := 0; i < n; i++ {
		e.RotateLeft()
	}
	assert.Equal(t, start, e.Current())

	for i := 0; i < n; i++ {
		e.RotateRight()
	}
	assert.Equal(t, start, e.Current())

	e.RotateLeft()
	e.RotateRight()
	assert.Equal(t, start, e.Current())
}

func TestGameOverAndReset(t *testing.T) {
	e := newTestEngine(t, 77)

	over := false
	for i := 0; i < 1000 && !over; i++ {
		over = e.Accelerate()
	}
	require.True(t, over)
	assert.Equal(t, tetris.StatusOver, e.Status())

	frozen := e.Current()
	assert.True(t, e.GameStep())
	assert.True(t, e.Accelerate())
	e.ShiftLeft()
	e.RotateLeft()
	assert.Equal(t, frozen, e.Current(), "a finished game ignores input")

	games := e.Stats().Games
	e.Reset()

	assert.Equal(t, tetris.StatusRunning, e.Status())
	assert.Equal(t, games+1, e.Stats().Games)
	assert.Empty(t, lockedCells(e))
	assert.True(t, e.Board().IsRowFull(e.Height()))
}

func TestResetLeavesOnlyFreshPieces(t *testing.T) {
	e := newTestEngine(t, 2)
	for round := 0; round < 3; round++ {
		for i := 0; i < 4; i++ {
			e.Accelerate()
		}
		e.Reset()

		var squares []tetris.Square
		for sq := range e.ColoredSquares() {
			squares = append(squares, sq)
		}

		cur := e.Current()
		require.Len(t, squares, 4)
		for i, sq := range cur.Squares() {
			assert.Equal(t, tetris.Square{X: sq.X, Y: sq.Y, Color: cur.Color}, squares[i])
		}
		assert.Empty(t, lockedCells(e))
	}
}

func TestColoredSquares(t *testing.T) {
	e := newTestEngine(t, 4)
	e.Accelerate()
	e.Accelerate()

	var squares []tetris.Square
	for sq := range e.ColoredSquares() {
		squares = append(squares, sq)
	}

	cells := lockedCells(e)
	require.Len(t, squares, len(cells)+4)
	for _, sq := range squares[:len(cells)] {
		assert.Equal(t, cells[tetris.Point{X: sq.X, Y: sq.Y}], sq.Color)
		assert.Less(t, sq.Y, e.Height())
	}

	count := 0
	for range e.ColoredSquares() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestEngineString(t *testing.T) {
	e := newTestEngine(t, 6)

	lines := strings.Split(e.String(), "\n")

	require.Len(t, lines, e.Height()+1)
	assert.Equal(t, "20**********", lines[20])
	assert.Equal(t, " 0", lines[0][:2])
	stars := strings.Count(e.String(), "*") - e.Width()
	assert.Equal(t, 4, stars)
}

func TestEngineLogsSpawnsAndGameOver(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e, err := tetris.NewEngine(10, 20, 3, tetris.WithSeed(1), tetris.WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, 2, logs.FilterMessage("created piece").Len())

	for i := 0; i < 1000 && !e.Accelerate(); i++ {
	}
	assert.Equal(t, 1, logs.FilterMessage("game over").Len())
}

func ExampleNewEngine() {
	e, err := tetris.NewEngine(10, 20, 3, tetris.WithSeed(1))
	if err != nil {
		panic(err)
	}

	n := 0
	for range e.ColoredSquares() {
		n++
	}
	fmt.Println(e.Width(), e.Height(), e.Status(), n)

	_, err = tetris.NewEngine(4, 20, 3)
	fmt.Println(err)
	// Output:
	// 10 20 running 4
	// tetris: invalid dimensions: 4x20, both must exceed 5
}

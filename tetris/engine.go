package tetris

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"
)

// ErrInvalidDimensions is returned by NewEngine when the board is too small or the
// starting row does not lie inside it.
var ErrInvalidDimensions = errors.New("tetris: invalid dimensions")

// MinDimension is the exclusive lower bound on board width and height.
const MinDimension = 5

// Status is the lifecycle state of a game.
type Status uint8

const (
	StatusRunning Status = iota
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Square is one colored cell reported to renderers.
type Square struct {
	X, Y  int
	Color uint8
}

// Stats holds diagnostic counters for the engine's lifetime.
type Stats struct {
	Locked      int
	RowsCleared int
	Games       int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for spawn, clear and game over events.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRand sets the random source used to generate pieces.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.generator = NewGenerator(rng)
	}
}

// WithSeed makes piece generation reproducible.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// Engine runs one game at a time: it owns the board, the falling piece and the next piece.
// It is not safe for concurrent use.
type Engine struct {
	width       int
	height      int
	startingRow int

	board     *Board
	current   Piece
	next      Piece
	generator *Generator
	status    Status
	stats     Stats

	logger *zap.Logger
}

// NewEngine creates an engine for a width x height field where rows above startingRow form
// the over-zone, and starts the first game.
func NewEngine(width, height, startingRow int, opts ...Option) (*Engine, error) {
	if width <= MinDimension || height <= MinDimension {
		return nil, fmt.Errorf("%w: %dx%d, both must exceed %d", ErrInvalidDimensions, width, height, MinDimension)
	}
	if startingRow < 0 || startingRow >= height {
		return nil, fmt.Errorf("%w: starting row %d outside [0,%d)", ErrInvalidDimensions, startingRow, height)
	}

	e := &Engine{
		width:       width,
		height:      height,
		startingRow: startingRow,
		board:       NewBoard(width, height),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.generator == nil {
		e.generator = NewGenerator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}

	e.Reset()
	return e, nil
}

func (e *Engine) Width() int       { return e.width }
func (e *Engine) Height() int      { return e.height }
func (e *Engine) StartingRow() int { return e.startingRow }

// Board exposes the locked cells. Callers must not modify it during play.
func (e *Engine) Board() *Board { return e.board }

// Current returns a copy of the falling piece.
func (e *Engine) Current() Piece { return e.current }

// Next returns a copy of the queued piece.
func (e *Engine) Next() Piece { return e.next }

func (e *Engine) Status() Status { return e.status }

func (e *Engine) Stats() Stats { return e.stats }

// Reset clears the board, keeping its floor, and spawns a fresh current and next piece.
func (e *Engine) Reset() {
	e.board.Reset()
	e.current = e.spawn()
	e.next = e.spawn()
	e.status = StatusRunning
	e.stats.Games++
}

func (e *Engine) spawn() Piece {
	p := e.generator.Spawn(e.width, e.startingRow)
	e.logger.Debug("created piece",
		zap.Stringer("kind", p.Kind),
		zap.Int("x", p.X),
		zap.Int("y", p.Y),
		zap.Int("orientation", p.Orientation),
		zap.Uint8("color", p.Color),
	)
	return p
}

// GameStep moves the falling piece down one row, locking it if it cannot move, and
// reports whether the game is over.
func (e *Engine) GameStep() bool {
	if e.status == StatusOver {
		return true
	}

	e.current.Shift(0, 1)
	if e.current.Collides(e.board) {
		e.current.Shift(0, -1)
		e.lockAndClear()
	}
	return e.status == StatusOver
}

// Accelerate drops the falling piece as far as it goes, locks it and reports whether the
// game is over.
func (e *Engine) Accelerate() bool {
	if e.status == StatusOver {
		return true
	}

	for !e.current.Collides(e.board) {
		e.current.Shift(0, 1)
	}
	e.current.Shift(0, -1)
	e.lockAndClear()
	return e.status == StatusOver
}

func (e *Engine) ShiftLeft()   { e.try(func(p *Piece) { p.Shift(-1, 0) }) }
func (e *Engine) ShiftRight()  { e.try(func(p *Piece) { p.Shift(1, 0) }) }
func (e *Engine) RotateLeft()  { e.try(func(p *Piece) { p.Rotate(1) }) }
func (e *Engine) RotateRight() { e.try(func(p *Piece) { p.Rotate(-1) }) }

// try applies move to a copy of the falling piece and keeps the result only if it stays
// inside the field without overlapping locked cells.
func (e *Engine) try(move func(p *Piece)) bool {
	if e.status == StatusOver {
		return false
	}

	candidate := e.current
	move(&candidate)
	if !candidate.InsideLimits(e.width, e.height) || candidate.Collides(e.board) {
		return false
	}
	e.current = candidate
	return true
}

func (e *Engine) lockAndClear() {
	written := e.current.Lock(e.board)
	e.stats.Locked++
	overflow := written < len(e.current.Squares())

	e.current = e.next
	e.next = e.spawn()

	if cleared := e.board.ClearFullRows(); len(cleared) > 0 {
		e.stats.RowsCleared += len(cleared)
		e.logger.Debug("cleared rows", zap.Ints("rows", cleared))
	}

	if overflow || e.overZoneOccupied() {
		e.status = StatusOver
		e.logger.Info("game over",
			zap.Int("game", e.stats.Games),
			zap.Int("locked", e.stats.Locked),
			zap.Int("rows_cleared", e.stats.RowsCleared),
		)
	}
}

func (e *Engine) overZoneOccupied() bool {
	for y := 0; y < e.startingRow; y++ {
		if !e.board.IsRowEmpty(y) {
			return true
		}
	}
	return false
}

// ColoredSquares yields every locked cell of the visible field followed by the cells of the
// falling piece. The sequence is computed on demand from the current state.
func (e *Engine) ColoredSquares() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for x := 0; x < e.width; x++ {
			for y := 0; y < e.height; y++ {
				if c := e.board.Get(x, y); c != 0 {
					if !yield(Square{X: x, Y: y, Color: c}) {
						return
					}
				}
			}
		}
		for _, sq := range e.current.Squares() {
			if !yield(Square{X: sq.X, Y: sq.Y, Color: e.current.Color}) {
				return
			}
		}
	}
}

// String draws the field and the falling piece, one line per row including the floor.
func (e *Engine) String() string {
	var sb strings.Builder
	squares := e.current.Squares()
	for y := 0; y <= e.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%2d", y)
		for x := 0; x < e.width; x++ {
			cell := byte('.')
			if e.board.Get(x, y) != 0 {
				cell = '*'
			}
			for _, sq := range squares {
				if sq.X == x && sq.Y == y {
					cell = '*'
				}
			}
			sb.WriteByte(cell)
		}
	}
	return sb.String()
}

package loop

import (
	"fmt"

	"github.com/plus3/blockfall/gesture"
	"github.com/plus3/blockfall/tetris"
)

// Command is a discrete request against the engine, as produced by keys, buttons or swipes.
type Command uint8

const (
	ShiftLeft Command = iota
	ShiftRight
	RotateLeft
	RotateRight
	// Drop hard-drops the falling piece.
	Drop
	// Step moves the falling piece down one row, like a timer tick.
	Step
	Reset
)

var commandNames = [...]string{
	ShiftLeft:   "shift-left",
	ShiftRight:  "shift-right",
	RotateLeft:  "rotate-left",
	RotateRight: "rotate-right",
	Drop:        "drop",
	Step:        "step",
	Reset:       "reset",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// Apply runs the command on e and reports whether the game is over afterwards.
func (c Command) Apply(e *tetris.Engine) bool {
	switch c {
	case ShiftLeft:
		e.ShiftLeft()
	case ShiftRight:
		e.ShiftRight()
	case RotateLeft:
		e.RotateLeft()
	case RotateRight:
		e.RotateRight()
	case Drop:
		return e.Accelerate()
	case Step:
		return e.GameStep()
	case Reset:
		e.Reset()
	default:
		panic(fmt.Sprintf("loop: unknown command %d", uint8(c)))
	}
	return e.Status() == tetris.StatusOver
}

// GestureCommand maps a classified swipe to the command it triggers.
// Gestures that match no direction trigger nothing.
func GestureCommand(g gesture.Gesture) (Command, bool) {
	switch g {
	case gesture.Tap:
		return RotateRight, true
	case gesture.Up:
		return RotateLeft, true
	case gesture.Down:
		return Drop, true
	case gesture.Left:
		return ShiftLeft, true
	case gesture.Right:
		return ShiftRight, true
	default:
		return 0, false
	}
}

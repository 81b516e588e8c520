package loop

import "github.com/plus3/blockfall/tetris"

// Frame is the per-update context handed to every system.
type Frame struct {
	DeltaTime float64
	Engine    *tetris.Engine
	// Input holds the commands submitted since the previous frame, oldest first.
	Input    []Command
	Commands *Commands

	stop bool
}

func newFrame(dt float64, engine *tetris.Engine, input []Command) *Frame {
	return &Frame{
		DeltaTime: dt,
		Engine:    engine,
		Input:     input,
		Commands:  newCommands(),
	}
}

// Stop ends the scheduler loop once the current frame completes.
func (f *Frame) Stop() {
	f.stop = true
}

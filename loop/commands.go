package loop

import "github.com/plus3/blockfall/tetris"

// Commands buffers engine commands and callbacks queued by systems during a frame.
// They run after every system has executed, in the order they were queued.
type Commands struct {
	commands []Command
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues an engine command.
func (c *Commands) Push(cmd Command) {
	c.commands = append(c.commands, cmd)
}

// Defer queues a function to run after the queued commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued engine commands.
func (c *Commands) Len() int {
	return len(c.commands)
}

// Flush applies the queued commands to e, runs the deferred functions and empties the
// buffer. It reports whether the game is over after the last command.
func (c *Commands) Flush(e *tetris.Engine) bool {
	for _, cmd := range c.commands {
		cmd.Apply(e)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.commands = c.commands[:0]
	c.defers = c.defers[:0]
	return e.Status() == tetris.StatusOver
}

package loop

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// InputSystem applies the commands submitted since the previous frame, in order.
type InputSystem struct {
	Applied int
}

func (s *InputSystem) Execute(frame *Frame) {
	for _, cmd := range frame.Input {
		cmd.Apply(frame.Engine)
		s.Applied++
	}
}

// GravitySystem advances the falling piece one row per elapsed Interval.
type GravitySystem struct {
	Interval time.Duration
	Steps    int

	elapsed time.Duration
}

func (s *GravitySystem) Execute(frame *Frame) {
	if s.Interval <= 0 || frame.Engine.Status() == tetris.StatusOver {
		s.elapsed = 0
		return
	}

	s.elapsed += time.Duration(frame.DeltaTime * float64(time.Second))
	for s.elapsed >= s.Interval {
		s.elapsed -= s.Interval
		s.Steps++
		if frame.Engine.GameStep() {
			s.elapsed = 0
			return
		}
	}
}

// SessionSystem plays a fixed number of games. Each time a game ends Repeat is
// decremented; the engine is reset while it is non-zero and the loop stops when it reaches
// zero. A negative Repeat plays forever.
type SessionSystem struct {
	Repeat int
	// Delay is how long a finished game stays on screen before the session moves on.
	Delay    time.Duration
	Finished int
	// OnGameOver, when set, is called with the engine stats of every finished game.
	OnGameOver func(stats tetris.Stats)

	waiting bool
	waited  time.Duration
}

func (s *SessionSystem) Execute(frame *Frame) {
	if frame.Engine.Status() != tetris.StatusOver {
		s.waiting = false
		return
	}

	if !s.waiting {
		s.waiting = true
		s.waited = 0
		s.Finished++
		if s.OnGameOver != nil {
			s.OnGameOver(frame.Engine.Stats())
		}
	} else {
		s.waited += time.Duration(frame.DeltaTime * float64(time.Second))
	}
	if s.waited < s.Delay {
		return
	}

	s.waiting = false
	s.Repeat--
	if s.Repeat == 0 {
		frame.Stop()
		return
	}
	frame.Commands.Push(Reset)
}

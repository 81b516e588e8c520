package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

var botMoves = [...]loop.Command{loop.ShiftLeft, loop.ShiftRight, loop.RotateLeft, loop.RotateRight}

// BotSystem queues random moves for the falling piece every frame and now and then drops it.
type BotSystem struct {
	Rand       *rand.Rand
	Moves      int
	DropChance float64

	Issued int
}

func (b *BotSystem) Execute(frame *loop.Frame) {
	if frame.Engine.Status() == tetris.StatusOver {
		return
	}

	for range b.Moves {
		frame.Commands.Push(botMoves[b.Rand.IntN(len(botMoves))])
		b.Issued++
	}
	if b.Rand.Float64() < b.DropChance {
		frame.Commands.Push(loop.Drop)
		b.Issued++
	}
}

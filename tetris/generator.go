package tetris

import "math/rand/v2"

// ColorCount is the number of piece colors; color ids run from 1 to ColorCount.
const ColorCount = 6

// Generator produces random pieces. Every spawn is independent: kinds may repeat.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Spawn places a random piece with a random color in the spawn zone of a board of the
// given width, then turns it 0 to 3 times. The turns are not checked against the board.
func (g *Generator) Spawn(width, startingRow int) Piece {
	kind := Kinds[g.rng.IntN(len(Kinds))]
	shape := Catalog(kind)

	lo, hi := shape.SpawnRange(width)
	p := Piece{
		Kind:  kind,
		X:     lo + g.rng.IntN(hi-lo),
		Y:     startingRow + shape.SpawnOffset(),
		Color: uint8(1 + g.rng.IntN(ColorCount)),
	}

	for range g.rng.IntN(4) {
		p.Rotate(1)
	}
	return p
}

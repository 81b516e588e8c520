package tetris

import "fmt"

// Kind identifies one of the seven piece shapes.
type Kind uint8

const (
	KindO Kind = iota
	KindI
	KindS
	KindZ
	KindL
	KindJ
	KindT

	kindCount
)

// Kinds lists every shape kind in catalog order.
var Kinds = [...]Kind{KindO, KindI, KindS, KindZ, KindL, KindJ, KindT}

func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return catalog[k].name
}

// Offset is a cell position relative to a piece anchor.
type Offset struct {
	X, Y int
}

// Shape is the immutable geometry of one kind: its orientation variants and spawn metadata.
type Shape struct {
	name         string
	orientations [][4]Offset
	// radius bounds the anchor column at spawn: x in [radius-1, width-radius+1).
	radius int
	// spawnOffset is added to the starting row to get the anchor row at spawn.
	spawnOffset int
}

// Each orientation is the previous one turned by (x, y) -> (y, -x) around the anchor.
var catalog = [kindCount]Shape{
	KindO: {
		name: "O",
		orientations: [][4]Offset{
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		},
		radius: 2,
	},
	KindI: {
		name: "I",
		orientations: [][4]Offset{
			{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
			{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
			{{0, 1}, {0, 0}, {0, -1}, {0, -2}},
			{{1, 0}, {0, 0}, {-1, 0}, {-2, 0}},
		},
		radius: 3,
	},
	KindS: {
		name: "S",
		orientations: [][4]Offset{
			{{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
			{{0, 1}, {0, 0}, {-1, 0}, {-1, -1}},
			{{1, 0}, {0, 0}, {0, 1}, {-1, 1}},
			{{0, -1}, {0, 0}, {1, 0}, {1, 1}},
		},
		radius: 2,
	},
	KindZ: {
		name: "Z",
		orientations: [][4]Offset{
			{{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
			{{-1, 1}, {-1, 0}, {0, 0}, {0, -1}},
			{{1, 1}, {0, 1}, {0, 0}, {-1, 0}},
			{{1, -1}, {1, 0}, {0, 0}, {0, 1}},
		},
		radius: 2,
	},
	KindL: {
		name: "L",
		orientations: [][4]Offset{
			{{-1, -1}, {-1, 0}, {-1, 1}, {0, 1}},
			{{-1, 1}, {0, 1}, {1, 1}, {1, 0}},
			{{1, 1}, {1, 0}, {1, -1}, {0, -1}},
			{{1, -1}, {0, -1}, {-1, -1}, {-1, 0}},
		},
		radius: 2,
	},
	KindJ: {
		name: "J",
		orientations: [][4]Offset{
			{{0, -1}, {0, 0}, {0, 1}, {-1, 1}},
			{{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
			{{0, 1}, {0, 0}, {0, -1}, {1, -1}},
			{{1, 0}, {0, 0}, {-1, 0}, {-1, -1}},
		},
		radius: 2,
	},
	KindT: {
		name: "T",
		orientations: [][4]Offset{
			{{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
			{{0, 1}, {0, 0}, {0, -1}, {1, 0}},
			{{1, 0}, {0, 0}, {-1, 0}, {0, -1}},
			{{0, -1}, {0, 0}, {0, 1}, {-1, 0}},
		},
		radius: 2,
	},
}

// Catalog returns the shape for kind. It panics on an unknown kind.
func Catalog(kind Kind) *Shape {
	if kind >= kindCount {
		panic(fmt.Sprintf("tetris: unknown shape kind %d", uint8(kind)))
	}
	return &catalog[kind]
}

// Name returns the single letter name of the shape.
func (s *Shape) Name() string {
	return s.name
}

// Orientations returns the number of orientation variants.
func (s *Shape) Orientations() int {
	return len(s.orientations)
}

// Offsets returns the four anchor-relative cells of the given orientation.
func (s *Shape) Offsets(orientation int) [4]Offset {
	if orientation < 0 || orientation >= len(s.orientations) {
		panic(fmt.Sprintf("tetris: shape %s has no orientation %d", s.name, orientation))
	}
	return s.orientations[orientation]
}

// SpawnRange returns the half-open range of anchor columns valid at spawn on a board of the given width.
func (s *Shape) SpawnRange(width int) (lo, hi int) {
	return s.radius - 1, width - s.radius + 1
}

// SpawnOffset returns the anchor row offset from the starting row at spawn.
func (s *Shape) SpawnOffset() int {
	return s.spawnOffset
}

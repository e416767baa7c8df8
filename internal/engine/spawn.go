package engine

// DefaultFourProbability is the chance a spawned tile is a 4 instead of a 2.
const DefaultFourProbability = 0.1

// Random is the entropy source used for spawning. *math/rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// SpawnRandomTile places a 2 (or a 4 with probability p4) in a uniformly
// chosen empty cell. It reports the cell used, or false if the board is full,
// in which case the board is left untouched.
func SpawnRandomTile(b *Board, rng Random, p4 float64) (Cell, bool) {
	empty := EmptyCells(*b)
	if len(empty) == 0 {
		return Cell{}, false
	}

	cell := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < p4 {
		value = 4
	}

	b[cell.Row][cell.Col] = value
	return cell, true
}

// NewBoard returns a fresh board with two spawned tiles.
// Each draw recomputes the empty set, so the two tiles never share a cell.
func NewBoard(rng Random, p4 float64) Board {
	var b Board
	SpawnRandomTile(&b, rng, p4)
	SpawnRandomTile(&b, rng, p4)
	return b
}

package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnRandomTileFullBoard(t *testing.T) {
	b := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	orig := b

	_, ok := SpawnRandomTile(&b, fixedRandom{}, DefaultFourProbability)
	assert.False(t, ok)
	assert.Equal(t, orig, b)
}

func TestSpawnRandomTileValue(t *testing.T) {
	var b Board
	cell, ok := SpawnRandomTile(&b, fixedRandom{index: 5, roll: 0.5}, DefaultFourProbability)
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 1, Col: 1}, cell)
	assert.Equal(t, 2, b[1][1])

	cell, ok = SpawnRandomTile(&b, fixedRandom{index: 5, roll: 0.05}, DefaultFourProbability)
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 1, Col: 2}, cell, "occupied cell is skipped")
	assert.Equal(t, 4, b[1][2])
}

func TestSpawnRandomTileDistribution(t *testing.T) {
	const trials = 20000
	rng := rand.New(rand.NewSource(2048))

	fours := 0
	for range trials {
		b := Board{
			{2, 0, 4, 0},
			{0, 8, 0, 16},
			{0, 0, 0, 0},
			{32, 0, 64, 0},
		}
		before := b
		cell, ok := SpawnRandomTile(&b, rng, DefaultFourProbability)
		require.True(t, ok)
		require.Zero(t, before[cell.Row][cell.Col], "spawned into occupied cell %v", cell)

		switch b[cell.Row][cell.Col] {
		case 4:
			fours++
		case 2:
		default:
			t.Fatalf("unexpected spawn value %d", b[cell.Row][cell.Col])
		}
	}

	ratio := float64(fours) / trials
	assert.InDelta(t, 0.1, ratio, 0.01, "four ratio %.4f", ratio)
}

func TestSpawnCellUniform(t *testing.T) {
	const trials = 16000
	rng := rand.New(rand.NewSource(1))
	counts := make(map[Cell]int)

	for range trials {
		var b Board
		cell, _ := SpawnRandomTile(&b, rng, DefaultFourProbability)
		counts[cell]++
	}

	require.Len(t, counts, Size*Size)
	expected := float64(trials) / float64(Size*Size)
	for cell, n := range counts {
		assert.Less(t, math.Abs(float64(n)-expected), expected*0.15, "cell %v drawn %d times", cell, n)
	}
}

func TestNewBoardDeterministic(t *testing.T) {
	b1 := NewBoard(rand.New(rand.NewSource(12345)), DefaultFourProbability)
	b2 := NewBoard(rand.New(rand.NewSource(12345)), DefaultFourProbability)
	assert.Equal(t, b1, b2)
	assert.Len(t, EmptyCells(b1), Size*Size-2)
}

func TestNewBoardNeverStacksTiles(t *testing.T) {
	// The same index twice must still land on two distinct cells.
	b := NewBoard(fixedRandom{index: 0, roll: 0.5}, DefaultFourProbability)
	assert.Equal(t, 2, b[0][0])
	assert.Equal(t, 2, b[0][1])
	assert.Len(t, EmptyCells(b), Size*Size-2)
}

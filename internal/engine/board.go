// Package engine implements the 2048 grid rules: sliding and merging tiles,
// spawning new ones and detecting when no move is left.
//
// Every direction is reduced to a single slide-left primitive by rotating the
// board before and after, so the merge logic exists exactly once.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the board edge length.
const Size = 4

// Board is a Size x Size grid of tile values. Zero means empty.
// Non-zero values are powers of two >= 2.
type Board [Size][Size]int

// Cell addresses a single board position.
type Cell struct {
	Row, Col int
}

// BoardFrom builds a Board from a slice-of-rows representation.
// It panics if the shape is not Size x Size or a value is not a valid tile,
// since that means the caller handed the engine a malformed grid.
func BoardFrom(rows [][]int) Board {
	if len(rows) != Size {
		panic(fmt.Sprintf("engine: board must have %d rows, got %d", Size, len(rows)))
	}

	var b Board
	for r, row := range rows {
		if len(row) != Size {
			panic(fmt.Sprintf("engine: row %d must have %d cells, got %d", r, Size, len(row)))
		}
		for c, v := range row {
			if !IsTileValue(v) {
				panic(fmt.Sprintf("engine: invalid tile value %d at (%d,%d)", v, r, c))
			}
			b[r][c] = v
		}
	}
	return b
}

// IsTileValue reports whether v may appear on a board: 0 or a power of two >= 2.
func IsTileValue(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// Rows returns the board as a slice of row slices.
func (b Board) Rows() [][]int {
	rows := make([][]int, Size)
	for r := range Size {
		rows[r] = append([]int(nil), b[r][:]...)
	}
	return rows
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	total := 0
	for r := range Size {
		for c := range Size {
			total += b[r][c]
		}
	}
	return total
}

// String renders the board row-major, one row per line, cells separated by spaces.
func (b Board) String() string {
	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(b[r][c]))
		}
	}
	return sb.String()
}

// EmptyCells returns the positions of all empty cells in row-major order.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for r := range Size {
		for c := range Size {
			if b[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// MaxTile returns the highest tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if b[r][c] > maxVal {
				maxVal = b[r][c]
			}
		}
	}
	return maxVal
}

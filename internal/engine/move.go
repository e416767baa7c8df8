package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists all valid directions.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// ErrUnknownDirection is returned by ParseDirection for unrecognized tokens.
var ErrUnknownDirection = errors.New("engine: unknown direction")

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Token returns the single-letter form used by the replay harness.
func (d Direction) Token() string {
	return strings.ToUpper(d.String()[:1])
}

// ParseDirection accepts L/R/U/D or the full names, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left":
		return DirLeft, nil
	case "r", "right":
		return DirRight, nil
	case "u", "up":
		return DirUp, nil
	case "d", "down":
		return DirDown, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// ApplyMove slides the board in the given direction.
// It returns the new board, the score gained from merges, and whether any
// cell changed. The input board is not modified.
//
// Passing a value outside Directions is a caller bug and panics.
func ApplyMove(b Board, dir Direction) (Board, int, bool) {
	var out Board
	var gained int

	switch dir {
	case DirLeft:
		out, gained = SlideLeft(b)
	case DirRight:
		out, gained = SlideLeft(Rotate180(b))
		out = Rotate180(out)
	case DirUp:
		out, gained = SlideLeft(RotateCCW(b))
		out = RotateCW(out)
	case DirDown:
		out, gained = SlideLeft(RotateCW(b))
		out = RotateCCW(out)
	default:
		panic(fmt.Sprintf("engine: invalid direction %d", int(dir)))
	}

	return out, gained, out != b
}

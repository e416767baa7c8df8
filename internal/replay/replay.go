// Package replay runs a game headlessly from a list of direction tokens and a
// seed, printing the final board and score. Its output is stable for a given
// seed, which makes it suitable for golden-file regression tests.
package replay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// ErrBadBoard is wrapped by ParseBoard failures.
var ErrBadBoard = errors.New("replay: bad board")

// Options configures a replay run.
type Options struct {
	// Start replaces the two random opening tiles when set.
	Start *engine.Board
	// FourProbability is always applied, so 0 means every spawn is a 2.
	FourProbability float64
}

// DefaultOptions returns options for a random start with the classic 10% fours.
func DefaultOptions() Options {
	return Options{FourProbability: engine.DefaultFourProbability}
}

// Result is the final state of a replay.
type Result struct {
	Board    engine.Board
	Score    int
	Moves    int // moves that changed the board
	Applied  int // tokens consumed before the game ended
	GameOver bool
}

// ParseTokens turns arguments into directions. Each argument may be a full
// name ("left"), a single letter, or a run of letters ("LLUR"); commas and
// spaces separate tokens too.
func ParseTokens(args []string) ([]engine.Direction, error) {
	var dirs []engine.Direction

	split := func(r rune) bool { return r == ',' || unicode.IsSpace(r) }
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, split) {
			if d, err := engine.ParseDirection(field); err == nil {
				dirs = append(dirs, d)
				continue
			}
			for _, r := range field {
				d, err := engine.ParseDirection(string(r))
				if err != nil {
					return nil, fmt.Errorf("token %q: %w", field, err)
				}
				dirs = append(dirs, d)
			}
		}
	}
	return dirs, nil
}

// ParseBoard reads a board written as rows separated by ';' or '/', with
// cells separated by spaces or commas, e.g. "2 0 0 0;0 0 0 0;0 0 0 0;2 2 0 0".
func ParseBoard(s string) (engine.Board, error) {
	rowSep := func(r rune) bool { return r == ';' || r == '/' || r == '\n' }
	cellSep := func(r rune) bool { return r == ',' || unicode.IsSpace(r) }

	rows := strings.FieldsFunc(s, rowSep)
	if len(rows) != engine.Size {
		return engine.Board{}, fmt.Errorf("%w: want %d rows, got %d", ErrBadBoard, engine.Size, len(rows))
	}

	grid := make([][]int, 0, engine.Size)
	for i, row := range rows {
		fields := strings.FieldsFunc(row, cellSep)
		if len(fields) != engine.Size {
			return engine.Board{}, fmt.Errorf("%w: row %d has %d cells", ErrBadBoard, i, len(fields))
		}
		cells := make([]int, engine.Size)
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return engine.Board{}, fmt.Errorf("%w: row %d: %w", ErrBadBoard, i, err)
			}
			if !engine.IsTileValue(v) {
				return engine.Board{}, fmt.Errorf("%w: %d is not a tile value", ErrBadBoard, v)
			}
			cells[j] = v
		}
		grid = append(grid, cells)
	}
	return engine.BoardFrom(grid), nil
}

// Run plays dirs against a fresh session. Tokens after game over are ignored.
func Run(rng engine.Random, opts Options, dirs []engine.Direction) Result {
	sessionOpts := []engine.SessionOption{engine.WithFourProbability(opts.FourProbability)}
	if opts.Start != nil {
		sessionOpts = append(sessionOpts, engine.WithStartBoard(*opts.Start))
	}

	s := engine.NewSession(rng, sessionOpts...)

	applied := 0
	for _, d := range dirs {
		if s.GameOver() {
			break
		}
		s.Move(d)
		applied++
	}

	snap := s.Snapshot()
	return Result{
		Board:    snap.Board,
		Score:    snap.Score,
		Moves:    snap.Moves,
		Applied:  applied,
		GameOver: snap.GameOver,
	}
}

package engine

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Session owns the board and score of one game. A Session is safe for
// concurrent use: readers never observe a board half-way through a move.
type Session struct {
	mu sync.RWMutex

	id       string
	board    Board
	score    int
	moves    int
	gameOver bool

	rng    Random
	p4     float64
	start  *Board
	logger *log.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithFourProbability overrides the chance of spawning a 4.
func WithFourProbability(p float64) SessionOption {
	return func(s *Session) {
		s.p4 = p
	}
}

// WithLogger attaches a logger for lifecycle events.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStartBoard makes the first session start from b instead of two random tiles.
// Later sessions started by Restart are random again.
func WithStartBoard(b Board) SessionOption {
	return func(s *Session) {
		s.start = &b
	}
}

// MoveResult describes the outcome of Session.Move.
type MoveResult struct {
	Direction Direction
	Changed   bool
	Gained    int
	Spawned   Cell
	DidSpawn  bool
	// GameOver is true only on the move that made the board terminal.
	GameOver bool
}

// SessionSnapshot is a consistent read-only copy of session state.
type SessionSnapshot struct {
	ID       string
	Board    Board
	Score    int
	Moves    int
	MaxTile  int
	GameOver bool
}

// NewSession starts a session using rng for every spawn.
func NewSession(rng Random, opts ...SessionOption) *Session {
	s := &Session{
		rng:    rng,
		p4:     DefaultFourProbability,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mu.Lock()
	if s.start != nil {
		s.reset(*s.start)
		s.start = nil
	} else {
		s.reset(NewBoard(s.rng, s.p4))
	}
	s.mu.Unlock()

	return s
}

// reset must be called with mu held.
func (s *Session) reset(b Board) {
	s.id = uuid.NewString()
	s.board = b
	s.score = 0
	s.moves = 0
	s.gameOver = IsTerminal(b)
	s.logger.Debug("session started", "session", s.id, "board", b.Rows())
}

// Restart discards the current board and score and begins a new session.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(NewBoard(s.rng, s.p4))
}

// Move applies one turn: slide, spawn a tile only if the board changed,
// add the merge score, and check for game over.
// Moves on a finished session are ignored.
func (s *Session) Move(dir Direction) MoveResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := MoveResult{Direction: dir}
	if s.gameOver {
		return res
	}

	board, gained, changed := ApplyMove(s.board, dir)
	if !changed {
		return res
	}

	res.Changed = true
	res.Gained = gained
	res.Spawned, res.DidSpawn = SpawnRandomTile(&board, s.rng, s.p4)

	s.board = board
	s.score += gained
	s.moves++

	if IsTerminal(s.board) {
		s.gameOver = true
		res.GameOver = true
		s.logger.Debug("game over",
			"session", s.id,
			"score", s.score,
			"max_tile", MaxTile(s.board),
			"moves", s.moves,
		)
	}

	return res
}

// Snapshot returns a consistent copy of the session state.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return SessionSnapshot{
		ID:       s.id,
		Board:    s.board,
		Score:    s.score,
		Moves:    s.moves,
		MaxTile:  MaxTile(s.board),
		GameOver: s.gameOver,
	}
}

// Board returns a copy of the current board.
func (s *Session) Board() Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board
}

// Score returns the current score.
func (s *Session) Score() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.score
}

// ID returns the current session identifier.
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// GameOver reports whether the current session has ended.
func (s *Session) GameOver() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gameOver
}

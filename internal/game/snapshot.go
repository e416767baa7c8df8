package game

import "github.com/vovakirdan/tui-2048/internal/engine"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Paused    bool
	SessionID string
	Score     int
	Moves     int
	Board     engine.Board
	MaxTile   int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session.Snapshot()
	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Paused:    g.paused,
		SessionID: s.ID,
		Score:     s.Score,
		Moves:     s.Moves,
		Board:     s.Board,
		MaxTile:   s.MaxTile,
	}
}

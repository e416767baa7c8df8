package game

import "github.com/vovakirdan/tui-2048/internal/engine"

// popDurationSeconds is how long a freshly spawned tile stays highlighted.
const popDurationSeconds = 0.2

// popAnimation highlights the tile spawned by the last move.
type popAnimation struct {
	cell     engine.Cell
	ticks    int
	duration int
}

// startPop begins highlighting a newly spawned tile.
func (g *Game) startPop(cell engine.Cell) {
	duration := int(popDurationSeconds * float64(g.tickRate))
	if duration < 1 {
		duration = 1
	}
	g.pop = &popAnimation{cell: cell, duration: duration}
}

// updatePop advances the pop animation by one tick.
func (g *Game) updatePop() {
	if g.pop == nil {
		return
	}
	g.pop.ticks++
	if g.pop.ticks >= g.pop.duration {
		g.pop = nil
	}
}

// Pop returns the highlighted cell and its eased progress in [0, 1].
func (g *Game) Pop() (engine.Cell, float64, bool) {
	if g.pop == nil {
		return engine.Cell{}, 0, false
	}
	t := float64(g.pop.ticks) / float64(g.pop.duration)
	return g.pop.cell, easeOutQuad(t), true
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// Package game drives a 2048 session from discrete input frames. It owns the
// intro, playing and game-over phases and renders into a core.Screen; the
// terminal and window shells only translate input and display output.
package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Phase is the current screen of the game.
type Phase string

const (
	PhaseIntro    Phase = "intro"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// autoRestartSeconds is how long the game-over overlay stays up before an
// automatic rematch, when enabled.
const autoRestartSeconds = 3

// Options configures a Game.
type Options struct {
	SpawnFourProbability float64
	ShowIntro            bool
	AutoRestart          bool
	Logger               *log.Logger
}

// DefaultOptions returns the classic rules: 10% fours, intro shown, manual rematch.
func DefaultOptions() Options {
	return Options{
		SpawnFourProbability: engine.DefaultFourProbability,
		ShowIntro:            true,
	}
}

// Game implements the 2048 puzzle game.
type Game struct {
	opts    Options
	logger  *log.Logger
	rng     *rand.Rand
	session *engine.Session
	tick    uint64

	phase         Phase
	introShown    bool
	paused        bool
	tooSmall      bool
	gameOverTicks int
	tickRate      int
	lastGain      int

	screenW int
	screenH int

	pop *popAnimation
}

// New creates a game with the given options.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		opts:   opts,
		logger: logger,
	}
}

// Reset initializes the game with a fresh session.
// The intro is shown only on the first reset.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.gameOverTicks = 0
	g.lastGain = 0
	g.pop = nil
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	g.session = engine.NewSession(g.rng,
		engine.WithFourProbability(g.opts.SpawnFourProbability),
		engine.WithLogger(g.logger),
	)

	g.phase = PhasePlaying
	if g.opts.ShowIntro && !g.introShown {
		g.phase = PhaseIntro
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Session exposes the underlying engine session for read access.
func (g *Game) Session() *engine.Session {
	return g.session
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.updatePop()

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseIntro:
		if in.Has(core.ActionConfirm) {
			g.introShown = true
			g.phase = PhasePlaying
		}
		return core.StepResult{State: g.State()}

	case PhaseGameOver:
		g.gameOverTicks++
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.Rematch()
		} else if g.opts.AutoRestart && g.gameOverTicks >= autoRestartSeconds*g.tickRate {
			g.Rematch()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	return g.processMove(dir)
}

// directionFor picks at most one direction from the frame.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp, true
	case in.Has(core.ActionDown):
		return engine.DirDown, true
	case in.Has(core.ActionLeft):
		return engine.DirLeft, true
	case in.Has(core.ActionRight):
		return engine.DirRight, true
	}
	return 0, false
}

// processMove handles a move in the given direction.
func (g *Game) processMove(dir engine.Direction) core.StepResult {
	res := g.session.Move(dir)
	if !res.Changed {
		return core.StepResult{State: g.State()}
	}

	g.lastGain = res.Gained
	if res.DidSpawn {
		g.startPop(res.Spawned)
	}

	var started bool
	if res.GameOver {
		g.phase = PhaseGameOver
		g.gameOverTicks = 0
		started = true
	}

	return core.StepResult{State: g.State(), GameOverStarted: started}
}

// Rematch discards the finished session and starts a new one.
func (g *Game) Rematch() {
	g.session.Restart()
	g.phase = PhasePlaying
	g.gameOverTicks = 0
	g.lastGain = 0
	g.pop = nil
	g.paused = false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	var score int
	if g.session != nil {
		score = g.session.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused || g.tooSmall || g.phase == PhaseIntro,
	}
}

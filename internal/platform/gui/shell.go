// Package gui provides the Ebitengine window shell for the game.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/gui/theme"
)

const lineGap = 24

// Shell adapts a game.Game to ebiten.Game.
type Shell struct {
	game    *game.Game
	window  config.WindowConfig
	face    font.Face
	palette *theme.Palette
	logger  *log.Logger
	rematch core.Rect
}

// NewShell creates a window shell around g.
func NewShell(g *game.Game, window config.WindowConfig, logger *log.Logger) *Shell {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Shell{
		game:    g,
		window:  window,
		face:    basicfont.Face7x13,
		palette: theme.NewPalette(),
		logger:  logger,
		rematch: theme.RematchButton(window.Width, window.Height),
	}
}

// Update proceeds the game state by one tick.
func (s *Shell) Update() error {
	frame, quit := readInput(s.rematch, s.game.Phase() == game.PhaseGameOver)
	if quit {
		return ebiten.Termination
	}

	res := s.game.Step(frame)
	if res.GameOverStarted {
		snap := s.game.Snapshot()
		s.logger.Info("session finished",
			"session", snap.SessionID,
			"score", snap.Score,
			"max_tile", snap.MaxTile,
			"moves", snap.Moves,
		)
	}
	return nil
}

// Draw renders the current phase.
func (s *Shell) Draw(screen *ebiten.Image) {
	screen.Fill(theme.Background)

	if s.game.Phase() == game.PhaseIntro {
		s.drawIntro(screen)
		return
	}

	snap := s.game.Snapshot()
	s.drawBoard(screen, snap.Board)
	hudY := engine.Size*s.window.TileSize + s.window.Padding + lineGap
	s.drawText(screen, fmt.Sprintf("Score: %d", snap.Score), s.window.Padding, hudY, theme.Text)
	s.drawText(screen, fmt.Sprintf("Max: %d", snap.MaxTile), s.window.Width/2, hudY, theme.Text)

	if snap.Paused {
		s.drawBanner(screen, "PAUSED - press P")
	}
	if snap.Phase == game.PhaseGameOver {
		s.drawGameOver(screen, snap)
	}
}

// Layout uses a fixed logical size and lets Ebitengine scale it.
func (s *Shell) Layout(_, _ int) (int, int) {
	return s.window.Width, s.window.Height
}

func (s *Shell) drawBoard(screen *ebiten.Image, board engine.Board) {
	tile := float32(s.window.TileSize)
	pad := float32(s.window.Padding)
	popCell, progress, popping := s.game.Pop()

	for r := range engine.Size {
		for c := range engine.Size {
			x := float32(c)*tile + pad
			y := float32(r)*tile + pad
			size := tile - pad

			vector.DrawFilledRect(screen, x, y, size, size, theme.EmptyCell, false)

			val := board[r][c]
			if val == 0 {
				continue
			}

			if popping && popCell == (engine.Cell{Row: r, Col: c}) {
				// Grow from 60% to full size.
				scaled := size * float32(0.6+0.4*progress)
				x += (size - scaled) / 2
				y += (size - scaled) / 2
				size = scaled
			}

			vector.DrawFilledRect(screen, x, y, size, size, s.palette.Tile(val), false)
			s.drawCentered(screen, strconv.Itoa(val), int(x+size/2), int(y+size/2), s.palette.TileText(val))
		}
	}
}

func (s *Shell) drawIntro(screen *ebiten.Image) {
	lines := []string{
		"Welcome to 2048!",
		"Combine the tiles to get the 2048 tile!",
		"Use arrow keys to move tiles:",
		"Tiles with the same number merge into one!",
		"Press ENTER to start the game.",
	}
	cx := s.window.Width / 2
	for i, line := range lines {
		s.drawCentered(screen, line, cx, s.window.Height/4-60+i*lineGap, theme.Text)
	}

	examples := [][3]int{{2, 2, 4}, {4, 4, 8}}
	tile := float32(s.window.TileSize) / 2
	for i, ex := range examples {
		y := float32(s.window.Height/2 + i*int(tile+20))
		for j, v := range ex {
			x := float32(cx) + float32(j-1)*(tile+30) - tile/2
			vector.DrawFilledRect(screen, x, y, tile, tile, s.palette.Tile(v), false)
			s.drawCentered(screen, strconv.Itoa(v), int(x+tile/2), int(y+tile/2), s.palette.TileText(v))
		}
		midY := int(y + tile/2)
		s.drawCentered(screen, "+", cx-int(tile/2+15), midY, theme.Text)
		s.drawCentered(screen, "=", cx+int(tile/2+15), midY, theme.Text)
	}
}

func (s *Shell) drawGameOver(screen *ebiten.Image, snap game.Snapshot) {
	w, h := float32(s.window.Width), float32(s.window.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, theme.Overlay, false)

	cx := s.window.Width / 2
	cy := s.window.Height/2 - 100
	s.drawCentered(screen, "GAME OVER", cx, cy, theme.Text)
	s.drawCentered(screen, fmt.Sprintf("Score: %d   Max tile: %d", snap.Score, snap.MaxTile), cx, cy+lineGap, theme.Text)

	b := s.rematch
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), theme.Button, false)
	bx, by := b.Center()
	s.drawCentered(screen, "Rematch", bx, by, theme.LightText)
}

func (s *Shell) drawBanner(screen *ebiten.Image, msg string) {
	w := float32(s.window.Width)
	y := float32(s.window.Height/2 - lineGap)
	vector.DrawFilledRect(screen, 0, y, w, 2*lineGap, theme.Overlay, false)
	s.drawCentered(screen, msg, s.window.Width/2, s.window.Height/2, theme.Text)
}

func (s *Shell) drawText(screen *ebiten.Image, str string, x, y int, clr color.Color) {
	text.Draw(screen, str, s.face, x, y, clr)
}

// drawCentered draws str centered on (cx, cy).
func (s *Shell) drawCentered(screen *ebiten.Image, str string, cx, cy int, clr color.Color) {
	b := text.BoundString(s.face, str)
	w := b.Max.X - b.Min.X
	h := b.Max.Y - b.Min.Y
	text.Draw(screen, str, s.face, cx-w/2, cy+h/2, clr)
}

// Run opens the window and blocks until it is closed.
func Run(g *game.Game, window config.WindowConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	// The character screen is unused here; give the game a size that is never "too small".
	def := core.DefaultConfig()
	rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	g.Reset(rt)

	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetTPS(rt.TickRate)

	if err := ebiten.RunGame(NewShell(g, window, logger)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game of 2048 in the terminal.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  Enter            - Start (intro screen)
  R/Enter          - Rematch (after game over)
  P/Esc            - Pause
  Q/Ctrl+C         - Quit

Logs go to tui.log_file from the config while the game is running,
and are discarded when it is empty.

Examples:
  t2048 play
  t2048 play --seed 2048
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs only go to a file.
	logOut, closeLog, err := openLogFile(cfg.TUI.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(logOut, cfg.Log.Level)
	if err != nil {
		return err
	}

	// Get terminal size early so the first frame is laid out correctly
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TUI.TickRate,
		Seed:     resolveSeed(),
	}

	g := game.New(gameOptions(cfg, logger))
	logger.Info("starting terminal game", "seed", rt.Seed, "tick_rate", rt.TickRate)

	if err := tui.Run(g, rt, logger); err != nil {
		return fmt.Errorf("play: %w", err)
	}

	snap := g.Snapshot()
	logger.Info("exiting", "score", snap.Score, "moves", snap.Moves, "max_tile", snap.MaxTile)
	return nil
}

// openLogFile opens path for appending. An empty path yields the null device.
func openLogFile(path string) (*os.File, func(), error) {
	if path == "" {
		f, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", os.DevNull, err)
		}
		return f, func() { _ = f.Close() }, nil
	}

	expanded, err := config.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

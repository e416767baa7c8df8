package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play 2048 there.

Controls:
  Arrows/WASD    - Slide tiles
  Enter          - Start (intro screen)
  R/Enter/Click  - Rematch (after game over)
  P              - Pause
  Q/Esc          - Quit

Window size, title, tile geometry and tick rate come from the window
section of the config.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.TickRate = cfg.Window.TickRate
	rt.Seed = resolveSeed()

	logger.Info("opening window", "seed", rt.Seed, "size", []int{cfg.Window.Width, cfg.Window.Height})
	g := game.New(gameOptions(cfg, logger))
	return gui.Run(g, cfg.Window, rt, logger)
}

// t2048 is the 2048 sliding-tile puzzle for the terminal and the desktop.
//
// Usage:
//
//	t2048 play               - Play in the terminal
//	t2048 window             - Play in a desktop window
//	t2048 replay <moves...>  - Replay moves headlessly and print the result
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible games
//	--config <path>    - Path to a YAML config file
//	--log-level <lvl>  - Override log.level from the config
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/game"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide tiles, merge numbers, reach 2048",
	Long: `t2048 plays the 2048 puzzle on a 4x4 grid.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  replay   - Apply a list of moves to a seeded game and print the board

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 window --config ./my-2048.yaml
  t2048 replay --seed 7 LLURDD`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig reads the layered config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger builds the application logger writing to w.
func newLogger(w *os.File, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "t2048",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	}), nil
}

// resolveSeed returns the seed flag, or a time-based seed when unset.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// gameOptions maps the game section of the config onto game.Options.
func gameOptions(cfg config.Config, logger *log.Logger) game.Options {
	return game.Options{
		SpawnFourProbability: cfg.Game.SpawnFourProbability,
		ShowIntro:            cfg.Game.ShowIntro,
		AutoRestart:          cfg.Game.AutoRestart,
		Logger:               logger,
	}
}

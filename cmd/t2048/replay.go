package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/replay"
)

var (
	flagBoard  string
	flagFormat string
)

var replayCmd = &cobra.Command{
	Use:   "replay <moves...>",
	Short: "Replay moves headlessly",
	Long: `Apply a sequence of moves to a seeded game and print the final board,
the score, and "game over" if the game ended. Moves after game over
are ignored.

Moves are L, R, U, D or left, right, up, down, given as separate
arguments, comma separated, or as one run such as LLURDD.

The same seed and moves always print the same output.

Examples:
  t2048 replay --seed 7 LLURDD
  t2048 replay --seed 1 left up right down
  t2048 replay --board "2 2 0 0;0 0 0 0;0 0 0 0;0 0 0 0" L
  t2048 replay --seed 3 --format csv L,U,R`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagBoard, "board", "", `Start board, rows separated by ';' (e.g. "2 0 0 0;...")`)
	replayCmd.Flags().StringVar(&flagFormat, "format", replay.FormatText, "Output format: text, csv")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dirs, err := replay.ParseTokens(args)
	if err != nil {
		return err
	}

	opts, err := replayOptions(cfg, flagBoard)
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	seed := resolveSeed()
	res := replay.Run(rand.New(rand.NewSource(seed)), opts, dirs)
	logger.Debug("replay finished", "seed", seed, "tokens", len(dirs), "applied", res.Applied)

	if err := replay.Write(cmd.OutOrStdout(), res, flagFormat); err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	return nil
}

// replayOptions builds replay options from the config and the --board flag.
func replayOptions(cfg config.Config, board string) (replay.Options, error) {
	opts := replay.DefaultOptions()
	opts.FourProbability = cfg.Game.SpawnFourProbability

	if board != "" {
		start, err := replay.ParseBoard(board)
		if err != nil {
			return replay.Options{}, err
		}
		opts.Start = &start
	}
	return opts, nil
}

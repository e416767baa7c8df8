package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

func TestReplayOptionsUsesConfiguredProbability(t *testing.T) {
	for _, p4 := range []float64{0, 0.25, 1} {
		cfg := config.Default()
		cfg.Game.SpawnFourProbability = p4

		opts, err := replayOptions(cfg, "")
		if err != nil {
			t.Fatalf("replayOptions() error = %v", err)
		}
		if opts.FourProbability != p4 {
			t.Errorf("FourProbability = %v, want %v", opts.FourProbability, p4)
		}
		if opts.Start != nil {
			t.Error("Start should be nil without --board")
		}
	}
}

func TestReplayOptionsBoard(t *testing.T) {
	opts, err := replayOptions(config.Default(), "2 2 0 0;0 0 0 0;0 0 0 0;0 0 0 0")
	if err != nil {
		t.Fatalf("replayOptions() error = %v", err)
	}
	if opts.Start == nil || *opts.Start != (engine.Board{{2, 2, 0, 0}}) {
		t.Errorf("Start = %v", opts.Start)
	}

	if _, err := replayOptions(config.Default(), "2 2 0 0"); err == nil {
		t.Error("replayOptions() should reject a short board")
	}
}

// countTiles counts cells equal to v in the board part of text output.
func countTiles(t *testing.T, out string, v string) int {
	t.Helper()
	lines := strings.Split(out, "\n")
	if len(lines) < engine.Size {
		t.Fatalf("short output:\n%s", out)
	}
	n := 0
	for _, line := range lines[:engine.Size] {
		for _, f := range strings.Fields(line) {
			if f == v {
				n++
			}
		}
	}
	return n
}

func TestReplayCommandHonorsConfig(t *testing.T) {
	tests := []struct {
		name  string
		p4    string
		twos  int
		fours int
	}{
		{"fours disabled", "0", 1, 1},
		{"fours only", "1", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "t2048.yaml")
			data := []byte("game:\n  spawn_four_probability: " + tt.p4 + "\nlog:\n  level: error\n")
			if err := os.WriteFile(path, data, 0o600); err != nil {
				t.Fatal(err)
			}

			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetArgs([]string{
				"replay", "--seed", "9", "--config", path,
				"--board", "0 0 0 0;0 0 0 0;0 0 0 0;2 2 0 0", "L",
			})
			if err := rootCmd.Execute(); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			got := out.String()
			if !strings.Contains(got, "score: 4\n") {
				t.Errorf("output should report score 4:\n%s", got)
			}
			if n := countTiles(t, got, "2"); n != tt.twos {
				t.Errorf("%d twos on the board, want %d:\n%s", n, tt.twos, got)
			}
			if n := countTiles(t, got, "4"); n != tt.fours {
				t.Errorf("%d fours on the board, want %d:\n%s", n, tt.fours, got)
			}
		})
	}
}

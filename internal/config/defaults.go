package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			SpawnFourProbability: 0.1,
			ShowIntro:            true,
			AutoRestart:          false,
		},
		TUI: TUIConfig{
			TickRate: 30,
		},
		Window: WindowConfig{
			Title:    "2048",
			Width:    500,
			Height:   600,
			TileSize: 110,
			Padding:  10,
			TickRate: 60,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Package config provides YAML-based configuration loading for the game
// and its presentation shells.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for the game.
type Config struct {
	Game   GameConfig   `yaml:"game"`
	TUI    TUIConfig    `yaml:"tui"`
	Window WindowConfig `yaml:"window"`
	Log    LogConfig    `yaml:"log"`
}

// GameConfig defines gameplay parameters.
type GameConfig struct {
	SpawnFourProbability float64 `yaml:"spawn_four_probability"` // Chance a spawned tile is a 4 (0.0-1.0)
	ShowIntro            bool    `yaml:"show_intro"`             // Show the welcome screen before the first game
	AutoRestart          bool    `yaml:"auto_restart"`           // Start a new game right after game over
}

// TUIConfig defines terminal shell parameters.
type TUIConfig struct {
	TickRate int    `yaml:"tick_rate"` // Simulation ticks per second
	LogFile  string `yaml:"log_file"`  // Log destination while the alternate screen is active
}

// WindowConfig defines windowed shell parameters, in pixels.
type WindowConfig struct {
	Title    string `yaml:"title"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	TileSize int    `yaml:"tile_size"`
	Padding  int    `yaml:"padding"`
	TickRate int    `yaml:"tick_rate"` // Updates per second (Ebitengine TPS)
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ErrInvalidConfig is wrapped by all validation failures.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that all values are usable.
func (c Config) Validate() error {
	p := c.Game.SpawnFourProbability
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: game.spawn_four_probability %v not in [0, 1]", ErrInvalidConfig, p)
	}
	if c.TUI.TickRate <= 0 {
		return fmt.Errorf("%w: tui.tick_rate must be positive, got %d", ErrInvalidConfig, c.TUI.TickRate)
	}
	if c.Window.TickRate <= 0 {
		return fmt.Errorf("%w: window.tick_rate must be positive, got %d", ErrInvalidConfig, c.Window.TickRate)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.TileSize <= c.Window.Padding || c.Window.Padding < 0 {
		return fmt.Errorf("%w: window.tile_size %d must exceed window.padding %d",
			ErrInvalidConfig, c.Window.TileSize, c.Window.Padding)
	}
	return nil
}

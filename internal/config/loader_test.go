package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("game:\n  spawn_four_probability: 0.25\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.SpawnFourProbability != 0.25 {
		t.Errorf("SpawnFourProbability = %v, want 0.25", cfg.Game.SpawnFourProbability)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.TUI.TickRate != 30 {
		t.Errorf("TickRate = %d, want default 30", cfg.TUI.TickRate)
	}
	if !cfg.Game.ShowIntro {
		t.Error("ShowIntro should keep its default")
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("game:\n  spawn_four_probability: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative probability", func(c *Config) { c.Game.SpawnFourProbability = -0.1 }},
		{"zero tick rate", func(c *Config) { c.TUI.TickRate = 0 }},
		{"zero window width", func(c *Config) { c.Window.Width = 0 }},
		{"zero window tick rate", func(c *Config) { c.Window.TickRate = 0 }},
		{"padding wider than tile", func(c *Config) { c.Window.Padding = c.Window.TileSize }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/tmp/x.log")
	if err != nil || got != "/tmp/x.log" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/.t2048/t2048.log")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".t2048", "t2048.log"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}
}

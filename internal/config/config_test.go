package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultBoardConfigIsValid(t *testing.T) {
	cfg := DefaultBoardConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultBoardConfig().Validate() failed: %v", err)
	}

	dims := cfg.Dimensions()
	if dims.GameWidth != 720 || dims.CorrectionMargin != 10 {
		t.Errorf("Dimensions() = %+v, unexpected defaults", dims)
	}
	if cfg.Map.Rows != 20 || cfg.Map.Cols != 11 {
		t.Errorf("Map = %+v, expected 20x11", cfg.Map)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg BoardConfig
	if err := yaml.Unmarshal(defaultBoardYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultBoardConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultBoardConfig())
	}
}

func TestLoadBoardCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	data := []byte("arena:\n  width: 400\n  height: 800\nmap:\n  rows: 6\n  cols: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadBoard(path)
	if err != nil {
		t.Fatalf("LoadBoard() failed: %v", err)
	}

	if cfg.Arena.Width != 400 || cfg.Map.Rows != 6 || cfg.Map.Cols != 5 {
		t.Errorf("LoadBoard() = %+v, expected overrides applied", cfg)
	}
	// Unset fields keep defaults
	if cfg.Arena.CellSize != 60 || cfg.Trail.SampleSpacing != 40 {
		t.Errorf("LoadBoard() lost defaults: %+v", cfg)
	}
}

func TestLoadBoardMissingCustomPath(t *testing.T) {
	_, err := LoadBoard(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadBoard() should fail for a missing custom path")
	}
}

func TestLoadBoardRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, []byte("map:\n  cols: 40\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	_, err := LoadBoard(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadBoard() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BoardConfig)
	}{
		{"zero width", func(c *BoardConfig) { c.Arena.Width = 0 }},
		{"negative cell", func(c *BoardConfig) { c.Arena.CellSize = -1 }},
		{"margin too wide", func(c *BoardConfig) { c.Arena.CorrectionMargin = 400 }},
		{"no rows", func(c *BoardConfig) { c.Map.Rows = 0 }},
		{"grid too tall", func(c *BoardConfig) { c.Map.Rows = 30 }},
		{"grid too wide", func(c *BoardConfig) { c.Map.Cols = 12 }},
		{"negative spacing", func(c *BoardConfig) { c.Trail.SampleSpacing = -5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBoardConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/tmp/x.db")
	if err != nil || got != "/tmp/x.db" {
		t.Errorf("ExpandHome(absolute) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/shots.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if got != filepath.Join(home, "shots.db") {
		t.Errorf("ExpandHome(~/shots.db) = %q", got)
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBoard loads the board configuration and validates it.
// Search order: customPath -> ~/.brickshot/configs/board.yaml -> ./configs/board.yaml -> embedded default
//
// Fields missing from a file keep their default values.
func LoadBoard(customPath string) (BoardConfig, error) {
	cfg, err := loadBoard(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadBoard(customPath string) (BoardConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultBoardConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("board.yaml"); userCfgPath != "" {
		if cfg, ok := parseFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := parseFile(filepath.Join("configs", "board.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultBoardConfig()
	if err := yaml.Unmarshal(defaultBoardYAML, &cfg); err != nil {
		return DefaultBoardConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFile reads an optional config file over the defaults.
func parseFile(path string) (BoardConfig, bool) {
	cfg := DefaultBoardConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickshot", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

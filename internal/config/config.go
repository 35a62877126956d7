// Package config provides YAML-based board configuration loading for the
// trajectory engine and its front ends.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/brickshot/internal/core"
)

// ErrInvalid is returned by Validate for unusable configurations.
var ErrInvalid = errors.New("config: invalid board config")

// BoardConfig contains all configuration for one board session.
type BoardConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Map    MapConfig    `yaml:"map"`
	Trail  TrailConfig  `yaml:"trail"`
	Levels LevelsConfig `yaml:"levels"`
}

// ArenaConfig defines the arena extents and brick cell metrics in world units.
type ArenaConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	CellSize         float64 `yaml:"cell_size"`
	CorrectionMargin float64 `yaml:"correction_margin"`
}

// MapConfig defines the brick grid size.
type MapConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TrailConfig defines trail sampling parameters.
type TrailConfig struct {
	SampleSpacing float64 `yaml:"sample_spacing"` // Distance between trail points
}

// LevelsConfig defines where level layouts come from.
type LevelsConfig struct {
	Dir string `yaml:"dir"` // Directory of YAML levels; empty uses built-in levels
}

// Dimensions converts the arena section to engine dimensions.
func (c BoardConfig) Dimensions() core.Dimensions {
	return core.Dimensions{
		GameWidth:        c.Arena.Width,
		GameHeight:       c.Arena.Height,
		CellSize:         c.Arena.CellSize,
		CorrectionMargin: c.Arena.CorrectionMargin,
	}
}

// Validate checks that the configuration describes a usable board.
// The grid, including the row correction, must fit the arena.
func (c BoardConfig) Validate() error {
	a := c.Arena
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("%w: arena %vx%v", ErrInvalid, a.Width, a.Height)
	}
	if a.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size %v", ErrInvalid, a.CellSize)
	}
	if a.CorrectionMargin < 0 || 2*a.CorrectionMargin >= a.Width || 2*a.CorrectionMargin >= a.Height {
		return fmt.Errorf("%w: correction_margin %v", ErrInvalid, a.CorrectionMargin)
	}
	if c.Map.Rows <= 0 || c.Map.Cols <= 0 {
		return fmt.Errorf("%w: map %dx%d", ErrInvalid, c.Map.Rows, c.Map.Cols)
	}

	gridW := float64(c.Map.Cols) * a.CellSize
	if c.Map.Rows > 1 {
		gridW += a.CorrectionMargin
	}
	gridH := float64(c.Map.Rows) * a.CellSize
	if gridW > a.Width || gridH > a.Height {
		return fmt.Errorf("%w: %dx%d grid (%vx%v) does not fit arena %vx%v",
			ErrInvalid, c.Map.Rows, c.Map.Cols, gridW, gridH, a.Width, a.Height)
	}

	if c.Trail.SampleSpacing < 0 {
		return fmt.Errorf("%w: sample_spacing %v", ErrInvalid, c.Trail.SampleSpacing)
	}
	return nil
}

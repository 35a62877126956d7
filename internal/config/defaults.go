package config

import (
	_ "embed"

	"github.com/vovakirdan/brickshot/internal/core"
)

//go:embed defaults/board.yaml
var defaultBoardYAML []byte

// DefaultBoardConfig returns the default board configuration.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		Arena: ArenaConfig{
			Width:            720,
			Height:           1280,
			CellSize:         60,
			CorrectionMargin: core.DefaultCorrectionMargin,
		},
		Map: MapConfig{
			Rows: 20,
			Cols: 11,
		},
		Trail: TrailConfig{
			SampleSpacing: 40,
		},
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/tiles.yaml
var defaultTilesYAML []byte

// DefaultTilesConfig returns the default tile game configuration.
func DefaultTilesConfig() TilesConfig {
	return TilesConfig{
		Match: BoardConfig{
			Rows:       8,
			Cols:       8,
			Types:      5,
			CascadeCap: 10,
			Retries:    100,
			Moves:      30,
		},
		Merge: BoardConfig{
			Rows:       8,
			Cols:       8,
			Types:      5,
			CascadeCap: 10,
			Retries:    100,
			Moves:      40,
		},
		Animation: AnimationConfig{
			SwapTicks:  6, // ~100ms at 60fps
			ClearTicks: 8,
			FallTicks:  8,
		},
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const tilesFile = "tiles.yaml"

// LoadTiles loads the tile game configuration.
// Search order: customPath -> ~/.arcade/configs/tiles.yaml -> ./configs/tiles.yaml -> embedded default
//
// Files are decoded over the defaults, so a file may set only the keys it
// changes. An invalid result from customPath is an error; invalid files found
// on the search path are skipped.
func LoadTiles(customPath string) (TilesConfig, error) {
	if customPath != "" {
		cfg, err := readTiles(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(tilesFile), filepath.Join("configs", tilesFile)} {
		if path == "" {
			continue
		}
		if cfg, err := readTiles(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := DefaultTilesConfig()
	if err := yaml.Unmarshal(defaultTilesYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultTilesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readTiles(path string) (TilesConfig, error) {
	cfg := DefaultTilesConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyTilesPreset resizes both boards to a size preset.
func ApplyTilesPreset(cfg *TilesConfig, preset SizePreset) {
	rows, cols := preset.Dimensions()
	cfg.Match.Rows, cfg.Match.Cols = rows, cols
	cfg.Merge.Rows, cfg.Merge.Cols = rows, cols

	// Bigger boards get a longer game.
	switch preset {
	case SizeSmall:
		cfg.Match.Moves, cfg.Merge.Moves = scaleMoves(cfg.Match.Moves, 2, 3), scaleMoves(cfg.Merge.Moves, 2, 3)
	case SizeLarge:
		cfg.Match.Moves, cfg.Merge.Moves = scaleMoves(cfg.Match.Moves, 3, 2), scaleMoves(cfg.Merge.Moves, 3, 2)
	}
}

func scaleMoves(moves, num, den int) int {
	if moves == 0 {
		return 0
	}
	return max(1, moves*num/den)
}

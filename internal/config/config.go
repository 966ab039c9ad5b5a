// Package config provides YAML-based board configuration loading and
// size presets for the tile games.
package config

import (
	"fmt"

	"github.com/Entemena/MATCH3PROTOTYPE/internal/engine"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/grid"
)

// TilesConfig contains all configuration for the match and merge games.
type TilesConfig struct {
	Match     BoardConfig     `yaml:"match"`
	Merge     BoardConfig     `yaml:"merge"`
	Animation AnimationConfig `yaml:"animation"`
}

// BoardConfig defines one board session.
type BoardConfig struct {
	Rows       int `yaml:"rows"`
	Cols       int `yaml:"cols"`
	Types      int `yaml:"types"`       // palette size
	CascadeCap int `yaml:"cascade_cap"` // resolving passes per swap
	Retries    int `yaml:"retries"`     // generation retries per cell
	Moves      int `yaml:"moves"`       // swap budget, 0 = endless
}

// AnimationConfig defines tween lengths in ticks.
type AnimationConfig struct {
	SwapTicks  int `yaml:"swap_ticks"`
	ClearTicks int `yaml:"clear_ticks"`
	FallTicks  int `yaml:"fall_ticks"`
}

// Board returns the board section for a mode.
func (c TilesConfig) Board(mode engine.Mode) BoardConfig {
	if mode == engine.ModeMerge {
		return c.Merge
	}
	return c.Match
}

// Engine converts a board section into an engine config.
func (b BoardConfig) Engine(mode engine.Mode, seed int64) engine.Config {
	return engine.Config{
		Mode:       mode,
		Rows:       b.Rows,
		Cols:       b.Cols,
		Palette:    grid.NewPalette(b.Types),
		Seed:       seed,
		CascadeCap: b.CascadeCap,
		Retries:    b.Retries,
	}
}

// Validate checks both boards and the animation timings.
func (c TilesConfig) Validate() error {
	for _, mode := range []engine.Mode{engine.ModeMatch, engine.ModeMerge} {
		b := c.Board(mode)
		if err := b.Engine(mode, 0).Validate(); err != nil {
			return fmt.Errorf("%s board: %w", mode, err)
		}
		if b.CascadeCap < 1 {
			return fmt.Errorf("%s board: %w: cascade_cap must be at least 1", mode, engine.ErrConfiguration)
		}
		if b.Moves < 0 {
			return fmt.Errorf("%s board: %w: negative moves", mode, engine.ErrConfiguration)
		}
	}
	a := c.Animation
	if a.SwapTicks < 0 || a.ClearTicks < 0 || a.FallTicks < 0 {
		return fmt.Errorf("animation: %w: negative tick count", engine.ErrConfiguration)
	}
	return nil
}

// SizePreset represents a named board size.
type SizePreset string

const (
	SizeSmall   SizePreset = "small"
	SizeClassic SizePreset = "classic"
	SizeLarge   SizePreset = "large"
)

// ParseSizePreset validates a preset name. An empty name means classic.
func ParseSizePreset(s string) (SizePreset, error) {
	switch p := SizePreset(s); p {
	case "":
		return SizeClassic, nil
	case SizeSmall, SizeClassic, SizeLarge:
		return p, nil
	}
	return "", fmt.Errorf("unknown size %q (want small, classic or large)", s)
}

// Dimensions returns rows and cols for the preset.
func (p SizePreset) Dimensions() (rows, cols int) {
	switch p {
	case SizeSmall:
		return 6, 6
	case SizeLarge:
		return 10, 10
	default:
		return 8, 8
	}
}

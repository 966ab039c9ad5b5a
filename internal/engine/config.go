package engine

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/Entemena/MATCH3PROTOTYPE/internal/grid"
)

// DefaultCascadeCap bounds the detect/resolve/refill passes one swap may trigger.
const DefaultCascadeCap = 10

// Mode selects the detection and resolution rules.
type Mode int

const (
	// ModeMatch clears straight runs of three or more.
	ModeMatch Mode = iota
	// ModeMerge promotes connected groups of equal (type, level).
	ModeMerge
)

// String returns the mode name used in configs and on the command line.
func (m Mode) String() string {
	switch m {
	case ModeMatch:
		return "match"
	case ModeMerge:
		return "merge"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "match", "match3":
		return ModeMatch, nil
	case "merge", "merge3":
		return ModeMerge, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrConfiguration, s)
}

// Config describes one board session.
type Config struct {
	Mode    Mode
	Rows    int
	Cols    int
	Palette grid.Palette

	// Seed makes the session reproducible. Zero draws from system entropy.
	Seed int64

	// CascadeCap limits cascade passes per swap. Zero means DefaultCascadeCap.
	CascadeCap int

	// Retries caps rejected candidates per cell during board generation.
	// Zero means grid.DefaultRetries.
	Retries int
}

// Validate reports why a config cannot produce a board.
func (c Config) Validate() error {
	if c.Mode != ModeMatch && c.Mode != ModeMerge {
		return fmt.Errorf("%w: unknown mode %d", ErrConfiguration, c.Mode)
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: %w", ErrConfiguration, grid.ErrBadDimensions)
	}
	if err := c.Palette.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if c.CascadeCap < 0 {
		return fmt.Errorf("%w: negative cascade cap %d", ErrConfiguration, c.CascadeCap)
	}
	if c.Retries < 0 {
		return fmt.Errorf("%w: negative retry cap %d", ErrConfiguration, c.Retries)
	}
	return nil
}

func (c Config) cascadeCap() int {
	if c.CascadeCap == 0 {
		return DefaultCascadeCap
	}
	return c.CascadeCap
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger routes diagnostics to l. Without it the engine logs nowhere.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithSource replaces the seeded random stream, mainly for tests.
func WithSource(src grid.Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.src = src
		}
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

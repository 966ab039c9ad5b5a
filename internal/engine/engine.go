// Package engine drives a board through swap, detect, resolve and refill.
//
// An Engine is a single-threaded session object. Every stage that changes the
// board hands a Batch to the caller and then waits; the caller animates it and
// calls Advance to run the next stage. While a batch is pending the board is
// locked and player commands return ErrBusy.
package engine

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Entemena/MATCH3PROTOTYPE/internal/grid"
)

// Engine is one board session.
type Engine struct {
	cfg      Config
	log      *log.Logger
	src      grid.Source
	board    *grid.Grid
	detector grid.Detector
	policy   grid.Policy

	phase    Phase
	selected *grid.Tile
	pending  Batch
	seeds    []grid.Coord
	depth    int

	report Report
	stats  Stats
	diags  []grid.Diagnostic
}

// New validates cfg and builds a freshly populated board.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg: cfg,
		log: discardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = grid.NewSource(cfg.Seed)
	}

	switch cfg.Mode {
	case ModeMerge:
		e.detector = grid.FloodFill{}
		e.policy = grid.PromoteAnchor{}
	default:
		e.detector = grid.StraightRuns{}
		e.policy = grid.DeleteAll{}
	}

	if err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset discards the board and generates a new one from empty. Session
// totals start over; the random stream continues.
func (e *Engine) Reset() error {
	board, err := grid.New(e.cfg.Rows, e.cfg.Cols)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	e.diags = grid.Populate(board, e.src, e.cfg.Palette, grid.GenOptions{
		Retries:    e.cfg.Retries,
		FloodCheck: e.cfg.Mode == ModeMerge,
	})
	for _, d := range e.diags {
		e.log.Warn("board generation", "diagnostic", d.Kind, "cell", d.At, "attempts", d.Attempts)
	}
	e.log.Debug("board ready", "mode", e.cfg.Mode, "rows", e.cfg.Rows, "cols", e.cfg.Cols, "hash", board.Hash())

	e.board = board
	e.phase = PhaseIdle
	e.selected = nil
	e.pending = Batch{}
	e.seeds = nil
	e.depth = 0
	e.report = Report{}
	e.stats = Stats{MaxLevel: board.MaxLevel()}
	return nil
}

// Config returns the session configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Mode returns the rule set in use.
func (e *Engine) Mode() Mode {
	return e.cfg.Mode
}

// Grid exposes the board for reading. Callers must not mutate it.
func (e *Engine) Grid() *grid.Grid {
	return e.board
}

// Phase returns the current resolve loop state.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Locked reports whether a resolution is in progress.
func (e *Engine) Locked() bool {
	return e.phase != PhaseIdle
}

// Pending returns the batch waiting for acknowledgement, if any.
func (e *Engine) Pending() (Batch, bool) {
	if e.phase == PhaseIdle {
		return Batch{}, false
	}
	return e.pending, true
}

// Stats returns the session totals.
func (e *Engine) Stats() Stats {
	return e.stats
}

// LastReport returns the report of the most recent swap. It is only final
// once the engine is idle again.
func (e *Engine) LastReport() Report {
	return e.report
}

// Diagnostics returns anomalies recovered while generating the current board.
func (e *Engine) Diagnostics() []grid.Diagnostic {
	return e.diags
}

// Load replaces the board with g, which must match the configured size, be
// fully occupied and only hold palette types. The engine becomes idle.
func (e *Engine) Load(g *grid.Grid) error {
	if e.Locked() {
		return ErrBusy
	}
	if g.Rows() != e.cfg.Rows || g.Cols() != e.cfg.Cols {
		return fmt.Errorf("%w: board is %dx%d, want %dx%d", ErrConfiguration, g.Rows(), g.Cols(), e.cfg.Rows, e.cfg.Cols)
	}
	if err := g.CheckOccupancy(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	for _, t := range g.Tiles() {
		if !e.cfg.Palette.Contains(t.Type) {
			return fmt.Errorf("%w: tile %s is not in the palette", ErrConfiguration, t)
		}
	}

	e.board = g
	e.phase = PhaseIdle
	e.selected = nil
	e.pending = Batch{}
	e.seeds = nil
	e.diags = nil
	e.stats.MaxLevel = max(e.stats.MaxLevel, g.MaxLevel())
	return nil
}

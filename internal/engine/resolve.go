package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/Entemena/MATCH3PROTOTYPE/internal/grid"
)

// Report summarizes one swap and the cascade it triggered.
type Report struct {
	Swapped  [2]grid.Coord
	Depth    int // resolving passes that found at least one group
	Removed  int
	Promoted int
	Spawned  int

	// CascadeOverrun is set when the cascade cap stopped the loop while
	// groups were still on the board.
	CascadeOverrun bool
}

// Matched returns the tiles consumed by the cascade.
func (r Report) Matched() int {
	return r.Removed + r.Promoted
}

// Stats are the session totals.
type Stats struct {
	Score    int // cleared tiles
	Swaps    int
	Cascades int // resolving passes that found groups
	Overruns int
	MaxLevel int
}

// Swap exchanges the tiles at a and b and starts a resolution.
// The swap always commits, match or not. The returned batch holds the two
// move events; call Advance once they are shown.
func (e *Engine) Swap(a, b grid.Coord) (Batch, error) {
	if e.Locked() {
		return Batch{}, ErrBusy
	}
	if err := e.board.Swap(a, b); err != nil {
		return Batch{}, fmt.Errorf("engine: swap: %w", err)
	}

	e.selected = nil
	e.depth = 0
	e.seeds = []grid.Coord{a, b}
	e.report = Report{Swapped: [2]grid.Coord{a, b}}
	e.stats.Swaps++

	ta, tb := e.board.Get(a), e.board.Get(b)
	e.phase = PhaseSwapping
	e.pending = Batch{
		Stage:  PhaseSwapping,
		Events: []Event{moveEvent(ta, b, a), moveEvent(tb, a, b)},
	}
	return e.pending, nil
}

// Advance acknowledges the pending batch and runs the next stage.
// It returns the new batch and true, or false once the board is idle again.
func (e *Engine) Advance() (Batch, bool) {
	switch e.phase {
	case PhaseSwapping, PhaseRefilling:
		return e.resolve()
	case PhaseResolving:
		return e.refill()
	default:
		return Batch{}, false
	}
}

func (e *Engine) resolve() (Batch, bool) {
	groups := e.detector.Detect(e.board, e.seeds)
	e.seeds = nil
	if len(groups) == 0 {
		return e.finish()
	}
	if e.depth >= e.cfg.cascadeCap() {
		e.report.CascadeOverrun = true
		e.stats.Overruns++
		e.log.Warn("cascade overrun", "depth", e.depth, "cap", e.cfg.cascadeCap(), "groups", len(groups))
		return e.finish()
	}

	e.depth++
	res := e.policy.Apply(e.board, groups)
	e.report.Depth = e.depth
	e.report.Removed += len(res.Removed)
	e.report.Promoted += len(res.Promoted)
	e.stats.Cascades++
	e.stats.Score += len(res.Removed)
	for _, p := range res.Promoted {
		e.stats.MaxLevel = max(e.stats.MaxLevel, p.Tile.Level)
	}

	e.phase = PhaseResolving
	e.pending = Batch{Stage: PhaseResolving, Depth: e.depth, Events: resolutionEvents(res)}
	return e.pending, true
}

func (e *Engine) refill() (Batch, bool) {
	falls := grid.Collapse(e.board)
	spawns := grid.Refill(e.board, e.src, e.cfg.Palette)
	e.report.Spawned += len(spawns)

	e.phase = PhaseRefilling
	e.pending = Batch{Stage: PhaseRefilling, Depth: e.depth, Events: refillEvents(falls, spawns)}
	return e.pending, true
}

func (e *Engine) finish() (Batch, bool) {
	e.phase = PhaseIdle
	e.pending = Batch{}
	e.log.Debug("board settled", "depth", e.report.Depth, "removed", e.report.Removed, "promoted", e.report.Promoted)
	return Batch{}, false
}

// AnimateFunc shows a batch and returns when it is done.
type AnimateFunc func(ctx context.Context, b Batch) error

// Settle runs the pending resolution to completion, passing every batch to
// animate first. A nil animate skips presentation.
//
// If ctx is cancelled or animate fails, the remaining stages still run so
// the board ends full and idle; the error is returned with the report.
func (e *Engine) Settle(ctx context.Context, animate AnimateFunc) (Report, error) {
	var firstErr error
	b, ok := e.Pending()
	for ok {
		if firstErr == nil {
			if err := ctx.Err(); err != nil {
				firstErr = err
			} else if animate != nil {
				if err := animate(ctx, b); err != nil {
					firstErr = err
				}
			}
		}
		b, ok = e.Advance()
	}
	if firstErr != nil && !errors.Is(firstErr, context.Canceled) && !errors.Is(firstErr, context.DeadlineExceeded) {
		firstErr = fmt.Errorf("engine: animate: %w", firstErr)
	}
	return e.report, firstErr
}

// Play swaps a and b and settles without animation.
func (e *Engine) Play(a, b grid.Coord) (Report, error) {
	if _, err := e.Swap(a, b); err != nil {
		return Report{}, err
	}
	return e.Settle(context.Background(), nil)
}

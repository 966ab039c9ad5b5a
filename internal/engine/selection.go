package engine

import (
	"fmt"

	"github.com/Entemena/MATCH3PROTOTYPE/internal/grid"
)

// Outcome is what a cell activation did.
type Outcome int

const (
	OutcomeSelected Outcome = iota
	OutcomeDeselected
	OutcomeReselected
	OutcomeSwapped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeReselected:
		return "reselected"
	case OutcomeSwapped:
		return "swapped"
	default:
		return "unknown"
	}
}

// Activate handles a click or tap on cell c.
//
// With nothing selected c becomes the selection. Activating the selected cell
// again clears it. A neighbor of the selection swaps with it and starts a
// resolution; any other cell becomes the new selection instead.
//
// An out-of-bounds cell clears the selection and returns
// grid.ErrInvalidCoordinate. The board is never touched in that case.
func (e *Engine) Activate(c grid.Coord) (Outcome, error) {
	if e.Locked() {
		return 0, ErrBusy
	}
	if !e.board.InBounds(c) {
		e.selected = nil
		return 0, fmt.Errorf("engine: activate: %w: %s", grid.ErrInvalidCoordinate, c)
	}

	if e.selected == nil {
		e.selected = e.board.Get(c)
		return OutcomeSelected, nil
	}

	from := e.selected.Pos
	switch {
	case from == c:
		e.selected = nil
		return OutcomeDeselected, nil
	case grid.Adjacent(from, c):
		if _, err := e.Swap(from, c); err != nil {
			return 0, err
		}
		return OutcomeSwapped, nil
	default:
		e.selected = e.board.Get(c)
		return OutcomeReselected, nil
	}
}

// Selected returns the selected cell, if any.
func (e *Engine) Selected() (grid.Coord, bool) {
	if e.selected == nil {
		return grid.Coord{}, false
	}
	return e.selected.Pos, true
}

// Deselect clears the selection.
func (e *Engine) Deselect() {
	e.selected = nil
}

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPalette is returned when a palette has no types.
	ErrEmptyPalette = errors.New("grid: palette is empty")
	// ErrDuplicateType is returned when a palette lists a type twice.
	ErrDuplicateType = errors.New("grid: palette lists a type twice")
)

// Palette is the finite set of tile types a board draws from.
type Palette []TileType

// NewPalette returns the palette {0, 1, ..., n-1}. A non-positive n gives an
// empty palette.
func NewPalette(n int) Palette {
	p := make(Palette, max(n, 0))
	for i := range n {
		p[i] = TileType(i)
	}
	return p
}

// Validate checks the palette is non-empty and free of duplicates.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPalette
	}
	seen := make(map[TileType]bool, len(p))
	for _, t := range p {
		if seen[t] {
			return fmt.Errorf("%w: %d", ErrDuplicateType, t)
		}
		seen[t] = true
	}
	return nil
}

// Pick draws one type uniformly.
func (p Palette) Pick(src Source) TileType {
	return p[src.Intn(len(p))]
}

// Contains reports whether t is in the palette.
func (p Palette) Contains(t TileType) bool {
	for _, x := range p {
		if x == t {
			return true
		}
	}
	return false
}

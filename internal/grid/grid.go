package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCoordinate is returned when a cell lies outside the board.
	ErrInvalidCoordinate = errors.New("grid: invalid coordinate")
	// ErrNotAdjacent is returned by Swap for cells that do not share an edge.
	ErrNotAdjacent = errors.New("grid: cells are not adjacent")
	// ErrDuplicateTile is returned when a tile would be owned by two cells.
	ErrDuplicateTile = errors.New("grid: tile already owned by another cell")
	// ErrHole is reported by CheckOccupancy for an empty cell.
	ErrHole = errors.New("grid: empty cell")
	// ErrBadDimensions is returned for boards with no rows or columns.
	ErrBadDimensions = errors.New("grid: rows and cols must be positive")
)

// Grid is a Rows x Cols board. Each cell holds at most one tile.
// Cells are stored in row-major order: index = row*cols + col.
type Grid struct {
	rows   int
	cols   int
	cells  []*Tile
	nextID TileID
}

// New creates an empty board.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]*Tile, rows*cols),
	}, nil
}

// FromTypes builds a fully occupied board of level-1 tiles from a type matrix.
// Every row must have the same length.
func FromTypes(types [][]TileType) (*Grid, error) {
	if len(types) == 0 {
		return nil, ErrBadDimensions
	}
	g, err := New(len(types), len(types[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range types {
		if len(row) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadDimensions, r, len(row), g.cols)
		}
		for c, t := range row {
			g.Spawn(C(r, c), t)
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// InBounds returns true if the coordinate is on the board.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Get returns the tile at c, or nil for an empty or out-of-bounds cell.
func (g *Grid) Get(c Coord) *Tile {
	if !g.InBounds(c) {
		return nil
	}
	return g.cells[g.index(c)]
}

// Set places t at c (nil empties the cell) and updates t.Pos.
// A tile still owned by a different cell is rejected.
func (g *Grid) Set(c Coord, t *Tile) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinate, c)
	}
	if t != nil && t.Pos != c && g.Get(t.Pos) == t {
		return fmt.Errorf("%w: %s", ErrDuplicateTile, t)
	}
	g.cells[g.index(c)] = t
	if t != nil {
		t.Pos = c
	}
	return nil
}

// Take empties c and returns the tile that was there. The tile keeps its
// last Pos so callers can report where it was removed from.
func (g *Grid) Take(c Coord) *Tile {
	if !g.InBounds(c) {
		return nil
	}
	i := g.index(c)
	t := g.cells[i]
	g.cells[i] = nil
	return t
}

// Spawn creates a fresh level-1 tile at c, replacing whatever was there.
func (g *Grid) Spawn(c Coord, t TileType) *Tile {
	if !g.InBounds(c) {
		return nil
	}
	g.nextID++
	tile := &Tile{ID: g.nextID, Type: t, Level: 1, Pos: c}
	g.cells[g.index(c)] = tile
	return tile
}

// move relocates the tile at from to the empty cell to.
func (g *Grid) move(from, to Coord) *Tile {
	t := g.cells[g.index(from)]
	g.cells[g.index(from)] = nil
	g.cells[g.index(to)] = t
	if t != nil {
		t.Pos = to
	}
	return t
}

// Neighbors returns the in-bounds 4-neighbors of c in the order right, left, down, up.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range neighborOffsets {
		n := c.Add(d[0], d[1])
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Swap exchanges the tiles at a and b. Either both cells change or, on
// error, neither does.
func (g *Grid) Swap(a, b Coord) error {
	if !g.InBounds(a) {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinate, a)
	}
	if !g.InBounds(b) {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinate, b)
	}
	if !Adjacent(a, b) {
		return fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a, b)
	}
	ia, ib := g.index(a), g.index(b)
	g.cells[ia], g.cells[ib] = g.cells[ib], g.cells[ia]
	if t := g.cells[ia]; t != nil {
		t.Pos = a
	}
	if t := g.cells[ib]; t != nil {
		t.Pos = b
	}
	return nil
}

// Clone returns a deep copy of the board. Tile IDs are preserved.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		rows:   g.rows,
		cols:   g.cols,
		cells:  make([]*Tile, len(g.cells)),
		nextID: g.nextID,
	}
	for i, t := range g.cells {
		if t != nil {
			cp := *t
			out.cells[i] = &cp
		}
	}
	return out
}

// Tiles returns every tile on the board in row-major order.
func (g *Grid) Tiles() []*Tile {
	out := make([]*Tile, 0, len(g.cells))
	for _, t := range g.cells {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, t := range g.cells {
		if t == nil {
			n++
		}
	}
	return n
}

// Full reports whether every cell is occupied.
func (g *Grid) Full() bool {
	return g.EmptyCount() == 0
}

// MaxLevel returns the highest tile level on the board.
func (g *Grid) MaxLevel() int {
	best := 0
	for _, t := range g.cells {
		if t != nil && t.Level > best {
			best = t.Level
		}
	}
	return best
}

// CheckOccupancy verifies the at-rest invariants: every cell holds a tile,
// no tile is held by two cells, and each tile's Pos matches its cell.
func (g *Grid) CheckOccupancy() error {
	seen := make(map[*Tile]Coord, len(g.cells))
	for i, t := range g.cells {
		c := C(i/g.cols, i%g.cols)
		if t == nil {
			return fmt.Errorf("%w at %s", ErrHole, c)
		}
		if prev, dup := seen[t]; dup {
			return fmt.Errorf("%w: %s held by %s and %s", ErrDuplicateTile, t, prev, c)
		}
		seen[t] = c
		if t.Pos != c {
			return fmt.Errorf("grid: tile %s stored at %s", t, c)
		}
	}
	return nil
}

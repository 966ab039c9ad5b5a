// Package grid is the board resolution core shared by the match and merge
// engines: the cell model, match detection, resolution policies, gravity and
// refill. Everything here is synchronous and deterministic for a given Source.
package grid

import "fmt"

// Coord addresses a cell. Row 0 is the top of the board.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Adjacent reports whether a and b share an edge.
func Adjacent(a, b Coord) bool {
	return a.Manhattan(b) == 1
}

// neighborOffsets is the flood-fill visiting order: right, left, down, up.
var neighborOffsets = [4][2]int{
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
}

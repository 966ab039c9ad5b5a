package grid

import "fmt"

// TileType is a category drawn from the board palette. Tiles match on type.
type TileType int

// TileID identifies a tile for its whole life, across swaps and falls.
type TileID uint64

// Tile is a grid-resident piece. Its ID never changes; Type, Level and Pos
// are updated in place by the engines.
type Tile struct {
	ID    TileID
	Type  TileType
	Level int   // starts at 1, raised only by merge promotion
	Pos   Coord // current cell, or the last cell held while in flight
}

// Key is the (type, level) pair the flood-fill detector compares.
type Key struct {
	Type  TileType
	Level int
}

// Key returns the tile's matching key.
func (t *Tile) Key() Key {
	return Key{Type: t.Type, Level: t.Level}
}

// String returns a short description of the tile.
func (t *Tile) String() string {
	return fmt.Sprintf("#%d[t%d L%d]@%s", t.ID, t.Type, t.Level, t.Pos)
}

package grid

// Fall records one tile moving down its column during compaction.
type Fall struct {
	Tile *Tile
	From Coord
	To   Coord
}

// Spawn records a tile created by refill. From is the virtual cell above the
// board the tile drops in from (negative Row).
type Spawn struct {
	Tile *Tile
	From Coord
}

// Collapse compacts every column downward, preserving the relative order of
// the tiles in it. Afterwards no occupied cell has an empty cell beneath it.
// Columns are processed left to right, each from the bottom up.
func Collapse(g *Grid) []Fall {
	var falls []Fall
	for c := range g.cols {
		write := g.rows - 1
		for r := g.rows - 1; r >= 0; r-- {
			from := C(r, c)
			if g.Get(from) == nil {
				continue
			}
			if r != write {
				to := C(write, c)
				t := g.move(from, to)
				falls = append(falls, Fall{Tile: t, From: from, To: to})
			}
			write--
		}
	}
	return falls
}

// Refill fills every empty cell with a fresh level-1 tile drawn uniformly
// from the palette. Draw order is column by column, left to right, and top to
// bottom within a column.
func Refill(g *Grid, src Source, palette Palette) []Spawn {
	var spawns []Spawn
	for c := range g.cols {
		holes := 0
		for r := range g.rows {
			if g.Get(C(r, c)) == nil {
				holes++
			}
		}
		for r := range g.rows {
			at := C(r, c)
			if g.Get(at) != nil {
				continue
			}
			t := g.Spawn(at, palette.Pick(src))
			spawns = append(spawns, Spawn{Tile: t, From: C(r-holes, c)})
		}
	}
	return spawns
}

package grid

// MinMatch is the smallest group that counts as a match under either detector.
const MinMatch = 3

// Group is a set of coordinates that qualified as one match, in discovery order.
type Group []Coord

// Detector finds qualifying groups on a board.
// seeds narrows the search to groups touching those cells; detectors that
// always scan the whole board may ignore it. A nil seeds slice means "scan
// everything".
type Detector interface {
	Detect(g *Grid, seeds []Coord) []Group
}

// StraightRuns detects horizontal and vertical runs of at least three tiles
// of the same type. All qualifying tiles on the board are merged into a
// single deduplicated group, so an L or T shape is counted once.
type StraightRuns struct{}

// Detect implements Detector. Seeds are ignored.
func (StraightRuns) Detect(g *Grid, _ []Coord) []Group {
	marked := make([]bool, g.rows*g.cols)
	found := false

	for r := range g.rows {
		for c := range g.cols {
			if c <= g.cols-MinMatch && runAt(g, C(r, c), 0, 1) {
				for i := range MinMatch {
					marked[g.index(C(r, c+i))] = true
				}
				found = true
			}
			if r <= g.rows-MinMatch && runAt(g, C(r, c), 1, 0) {
				for i := range MinMatch {
					marked[g.index(C(r+i, c))] = true
				}
				found = true
			}
		}
	}
	if !found {
		return nil
	}

	group := make(Group, 0, MinMatch)
	for i, hit := range marked {
		if hit {
			group = append(group, C(i/g.cols, i%g.cols))
		}
	}
	return []Group{group}
}

// runAt reports whether the MinMatch cells from start stepping (dr, dc) are
// all occupied with the same type.
func runAt(g *Grid, start Coord, dr, dc int) bool {
	first := g.Get(start)
	if first == nil {
		return false
	}
	for i := 1; i < MinMatch; i++ {
		t := g.Get(start.Add(dr*i, dc*i))
		if t == nil || t.Type != first.Type {
			return false
		}
	}
	return true
}

// FloodFill detects 4-connected components of tiles sharing (type, level).
type FloodFill struct{}

// Detect implements Detector. With seeds, each seed's component is tested
// independently (a component reached from two seeds is reported once).
// Without seeds, every occupied cell is tried in row-major order.
func (FloodFill) Detect(g *Grid, seeds []Coord) []Group {
	assigned := make([]bool, g.rows*g.cols)
	var groups []Group

	try := func(seed Coord) {
		if !g.InBounds(seed) || assigned[g.index(seed)] || g.Get(seed) == nil {
			return
		}
		comp := component(g, seed, assigned)
		if len(comp) >= MinMatch {
			groups = append(groups, comp)
		}
	}

	if seeds != nil {
		for _, s := range seeds {
			try(s)
		}
		return groups
	}
	for r := range g.rows {
		for c := range g.cols {
			try(C(r, c))
		}
	}
	return groups
}

// Component returns the maximal connected group of tiles sharing the seed's
// (type, level). It returns nil for an empty or out-of-bounds seed.
func Component(g *Grid, seed Coord) Group {
	if g.Get(seed) == nil {
		return nil
	}
	return component(g, seed, make([]bool, g.rows*g.cols))
}

// component runs a breadth-first worklist from seed. Every cell it visits is
// marked in visited, which callers may share across seeds.
func component(g *Grid, seed Coord, visited []bool) Group {
	key := g.Get(seed).Key()
	queue := Group{seed}
	visited[g.index(seed)] = true

	for head := 0; head < len(queue); head++ {
		for _, n := range g.Neighbors(queue[head]) {
			i := g.index(n)
			if visited[i] {
				continue
			}
			t := g.cells[i]
			if t == nil || t.Key() != key {
				continue
			}
			visited[i] = true
			queue = append(queue, n)
		}
	}
	return queue
}

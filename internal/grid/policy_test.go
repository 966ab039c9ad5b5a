package grid

import "testing"

func TestAnchor(t *testing.T) {
	tests := []struct {
		name  string
		group Group
		want  Coord
	}{
		{"single lowest", Group{C(0, 0), C(1, 0), C(2, 3)}, C(2, 3)},
		{"tie goes left", Group{C(3, 4), C(3, 1), C(2, 0)}, C(3, 1)},
		{"horizontal line", Group{C(5, 2), C(5, 3), C(5, 4)}, C(5, 2)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Anchor(tc.group); got != tc.want {
				t.Errorf("Anchor(%v) = %s, want %s", tc.group, got, tc.want)
			}
		})
	}
}

func TestDeleteAll(t *testing.T) {
	g := mustGrid(t, [][]TileType{
		{1, 2, 1},
		{3, 3, 3},
	})
	groups := StraightRuns{}.Detect(g, nil)

	res := DeleteAll{}.Apply(g, groups)
	if len(res.Removed) != 3 || len(res.Promoted) != 0 {
		t.Fatalf("Apply() removed %d promoted %d, want 3 and 0", len(res.Removed), len(res.Promoted))
	}
	for c := range 3 {
		if g.Get(C(1, c)) != nil {
			t.Errorf("cell (1,%d) should be empty after removal", c)
		}
	}
	for _, tile := range res.Removed {
		if g.Get(tile.Pos) == tile {
			t.Errorf("removed tile %s still owns a cell", tile)
		}
	}
}

func TestPromoteAnchorFourGroup(t *testing.T) {
	// The 2x2 square of 1s is a connected group of four.
	g := mustGrid(t, [][]TileType{
		{1, 1, 2},
		{1, 1, 3},
		{4, 5, 6},
	})
	survivor := g.Get(C(1, 0))

	for _, trigger := range []Coord{C(0, 0), C(0, 1), C(1, 0), C(1, 1)} {
		trial := g.Clone()
		groups := FloodFill{}.Detect(trial, []Coord{trigger})
		res := PromoteAnchor{}.Apply(trial, groups)

		if len(res.Removed) != 3 || len(res.Promoted) != 1 {
			t.Fatalf("trigger %s: removed %d promoted %d, want 3 and 1", trigger, len(res.Removed), len(res.Promoted))
		}
		p := res.Promoted[0]
		if p.Tile.ID != survivor.ID || p.Tile.Pos != C(1, 0) {
			t.Errorf("trigger %s: survivor = %s, want tile #%d at (1,0)", trigger, p.Tile, survivor.ID)
		}
		if p.From != 1 || p.Tile.Level != 2 {
			t.Errorf("trigger %s: level %d -> %d, want 1 -> 2", trigger, p.From, p.Tile.Level)
		}
		if trial.EmptyCount() != 3 {
			t.Errorf("trigger %s: %d empty cells, want 3", trigger, trial.EmptyCount())
		}
	}
}

func TestPromoteAnchorFiveGroup(t *testing.T) {
	g := mustGrid(t, [][]TileType{
		{2, 2, 2, 1},
		{3, 1, 2, 3},
		{4, 3, 2, 1},
	})
	groups := FloodFill{}.Detect(g, nil)
	if len(groups) != 1 || len(groups[0]) != 5 {
		t.Fatalf("Detect() = %v, want one group of five", groups)
	}

	res := PromoteAnchor{}.Apply(g, groups)
	if len(res.Removed) != 4 {
		t.Errorf("removed %d, want 4", len(res.Removed))
	}
	if res.Matched() != 5 {
		t.Errorf("Matched() = %d, want 5", res.Matched())
	}
	anchor := g.Get(C(2, 2))
	if anchor == nil || anchor.Level != 2 || anchor.Type != 2 {
		t.Errorf("anchor at (2,2) = %v, want type 2 level 2", anchor)
	}
}

package grid

import "testing"

func TestStraightRuns(t *testing.T) {
	tests := []struct {
		name  string
		types [][]TileType
		want  int // tiles in the removal set
	}{
		{
			name: "no run",
			types: [][]TileType{
				{1, 2, 1, 2},
				{2, 1, 2, 1},
				{1, 2, 1, 2},
			},
			want: 0,
		},
		{
			name: "pair is not a match",
			types: [][]TileType{
				{1, 1, 2, 3},
				{2, 3, 1, 2},
				{3, 2, 3, 1},
			},
			want: 0,
		},
		{
			name: "horizontal run of three",
			types: [][]TileType{
				{1, 2, 1, 2},
				{2, 1, 2, 1},
				{3, 3, 3, 2},
			},
			want: 3,
		},
		{
			name: "vertical run of four",
			types: [][]TileType{
				{5, 1, 2, 3},
				{5, 2, 3, 1},
				{5, 3, 1, 2},
				{5, 1, 2, 3},
			},
			want: 4,
		},
		{
			name: "L shape counted once",
			types: [][]TileType{
				{1, 1, 1, 4},
				{1, 2, 3, 5},
				{1, 3, 2, 6},
			},
			want: 5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.types)
			groups := StraightRuns{}.Detect(g, nil)

			got := 0
			if len(groups) > 0 {
				if len(groups) != 1 {
					t.Fatalf("Detect() returned %d groups, want a single union", len(groups))
				}
				got = len(groups[0])
			}
			if got != tc.want {
				t.Errorf("Detect() matched %d tiles, want %d", got, tc.want)
			}
		})
	}
}

func TestStraightRunsSkipsHoles(t *testing.T) {
	g := mustGrid(t, [][]TileType{{7, 7, 7}})
	g.Take(C(0, 1))

	if groups := (StraightRuns{}).Detect(g, nil); len(groups) != 0 {
		t.Errorf("Detect() across a hole = %v, want none", groups)
	}
}

func floodBoard(t *testing.T) *Grid {
	return mustGrid(t, [][]TileType{
		{2, 2, 0, 1},
		{2, 3, 0, 1},
		{4, 3, 5, 1},
		{4, 5, 5, 6},
	})
}

func TestComponent(t *testing.T) {
	g := floodBoard(t)

	got := Component(g, C(0, 0))
	want := Group{C(0, 0), C(0, 1), C(1, 0)}
	if len(got) != len(want) {
		t.Fatalf("Component(0,0) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Component(0,0)[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if c := Component(g, C(9, 9)); c != nil {
		t.Errorf("Component(out of bounds) = %v, want nil", c)
	}
}

func TestFloodFillBoardWide(t *testing.T) {
	g := floodBoard(t)

	groups := FloodFill{}.Detect(g, nil)
	if len(groups) != 3 {
		t.Fatalf("Detect() found %d groups, want 3: %v", len(groups), groups)
	}
	wantTypes := []TileType{2, 1, 5}
	for i, group := range groups {
		if len(group) != 3 {
			t.Errorf("group %d has %d cells, want 3", i, len(group))
		}
		if tt := g.Get(group[0]).Type; tt != wantTypes[i] {
			t.Errorf("group %d type = %d, want %d", i, tt, wantTypes[i])
		}
	}
}

func TestFloodFillRespectsLevel(t *testing.T) {
	g := floodBoard(t)
	g.Get(C(1, 0)).Level = 2

	for _, group := range (FloodFill{}).Detect(g, nil) {
		if g.Get(group[0]).Type == 2 {
			t.Errorf("tiles of different levels must not connect: %v", group)
		}
	}
}

func TestFloodFillSeeds(t *testing.T) {
	g := floodBoard(t)

	// Both seeds sit in the same component; it is reported once.
	groups := FloodFill{}.Detect(g, []Coord{C(0, 1), C(1, 0)})
	if len(groups) != 1 || len(groups[0]) != 3 {
		t.Fatalf("Detect(seeds) = %v, want one group of 3", groups)
	}

	// A seed in a pair yields nothing.
	if groups := (FloodFill{}).Detect(g, []Coord{C(0, 2)}); len(groups) != 0 {
		t.Errorf("Detect(pair seed) = %v, want none", groups)
	}
}

package grid

import "testing"

func TestPopulateNoStraightRuns(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g, _ := New(8, 8)
		diags := Populate(g, NewSource(seed), NewPalette(5), GenOptions{})

		if len(diags) != 0 {
			t.Errorf("seed %d: unexpected diagnostics %v", seed, diags)
		}
		if err := g.CheckOccupancy(); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if groups := (StraightRuns{}).Detect(g, nil); len(groups) != 0 {
			t.Errorf("seed %d: generated board has runs %v\n%s", seed, groups, g)
		}
	}
}

func TestPopulateFloodCheck(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g, _ := New(8, 8)
		diags := Populate(g, NewSource(seed), NewPalette(5), GenOptions{FloodCheck: true})

		for _, d := range diags {
			if d.Kind == RoundsExhausted {
				t.Errorf("seed %d: %s", seed, d)
			}
		}
		if err := g.CheckOccupancy(); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if groups := (FloodFill{}).Detect(g, nil); len(groups) != 0 {
			t.Errorf("seed %d: generated board has groups %v\n%s", seed, groups, g)
		}
	}
}

func TestPopulateDeterministic(t *testing.T) {
	a, _ := New(6, 7)
	b, _ := New(6, 7)
	Populate(a, NewSource(42), NewPalette(4), GenOptions{FloodCheck: true})
	Populate(b, NewSource(42), NewPalette(4), GenOptions{FloodCheck: true})

	if a.Hash() != b.Hash() {
		t.Errorf("same seed produced different boards:\n%s\n\n%s", a, b)
	}
}

func TestPopulateSingleTypePalette(t *testing.T) {
	g, _ := New(3, 3)
	diags := Populate(g, NewSource(7), NewPalette(1), GenOptions{Retries: 5})

	if err := g.CheckOccupancy(); err != nil {
		t.Fatalf("board must still be full: %v", err)
	}
	// Cells (0,2), (1,2), (2,0), (2,1), (2,2) each complete a run of three
	// with nothing else to draw.
	if len(diags) != 5 {
		t.Fatalf("got %d diagnostics, want 5: %v", len(diags), diags)
	}
	for _, d := range diags {
		if d.Kind != RetryExhausted || d.Attempts != 5 {
			t.Errorf("diagnostic %s, want RetryExhausted after 5 attempts", d)
		}
	}
}

func TestPopulateRoundsExhausted(t *testing.T) {
	g, _ := New(2, 2)
	diags := Populate(g, NewSource(3), NewPalette(1), GenOptions{Retries: 2, FloodCheck: true, MaxRounds: 3})

	if err := g.CheckOccupancy(); err != nil {
		t.Fatalf("board must still be full: %v", err)
	}
	last := diags[len(diags)-1]
	if last.Kind != RoundsExhausted || last.Attempts != 3 {
		t.Errorf("last diagnostic = %s, want RoundsExhausted after 3 rounds", last)
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Kind: RetryExhausted, At: C(2, 3), Attempts: 100}
	want := "AntiMatchRetryExhausted at (2,3) after 100 attempts"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

package grid

import "fmt"

// DefaultRetries is the per-cell cap on rejected candidate types.
const DefaultRetries = 100

// DiagnosticKind classifies a recoverable generation anomaly.
type DiagnosticKind int

const (
	// RetryExhausted means every candidate for a cell completed a match and
	// the last one was kept anyway.
	RetryExhausted DiagnosticKind = iota
	// RoundsExhausted means the flood-fill cleanup gave up with groups left.
	RoundsExhausted
)

// String returns a human-readable name for the kind.
func (k DiagnosticKind) String() string {
	switch k {
	case RetryExhausted:
		return "AntiMatchRetryExhausted"
	case RoundsExhausted:
		return "AntiMatchRoundsExhausted"
	default:
		return "Unknown"
	}
}

// Diagnostic describes a recovered anomaly. It is informational only.
type Diagnostic struct {
	Kind     DiagnosticKind
	At       Coord
	Attempts int
}

// String returns a one-line description.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at %s after %d attempts", d.Kind, d.At, d.Attempts)
}

// GenOptions controls Populate.
type GenOptions struct {
	// Retries caps rejected candidates per cell. Zero means DefaultRetries.
	Retries int
	// FloodCheck re-scans the populated board with FloodFill and rerolls every
	// group of MinMatch or more until none remain.
	FloodCheck bool
	// MaxRounds caps the FloodCheck passes. Zero means rows*cols.
	MaxRounds int
}

// Populate fills every cell of g, row by row, so that no cell completes a
// straight run of three with the two cells directly above it or directly to
// its left. With FloodCheck it then rerolls any connected group the row scan
// could not see (L shapes, squares) until the board has none.
//
// A cell whose retries run out keeps its last candidate; that case, and a
// cleanup that runs out of rounds, is returned as a Diagnostic.
func Populate(g *Grid, src Source, palette Palette, opts GenOptions) []Diagnostic {
	if opts.Retries <= 0 {
		opts.Retries = DefaultRetries
	}
	if opts.MaxRounds <= 0 {
		opts.MaxRounds = g.rows * g.cols
	}

	var diags []Diagnostic
	for r := range g.rows {
		for c := range g.cols {
			at := C(r, c)
			g.Take(at)
			t := g.Spawn(at, palette.Pick(src))
			if d, ok := reroll(g, t, src, palette, opts.Retries, completesRun); !ok {
				diags = append(diags, d)
			}
		}
	}

	if !opts.FloodCheck {
		return diags
	}

	for round := 0; ; round++ {
		groups := FloodFill{}.Detect(g, nil)
		if len(groups) == 0 {
			return diags
		}
		if round >= opts.MaxRounds {
			return append(diags, Diagnostic{Kind: RoundsExhausted, At: groups[0][0], Attempts: round})
		}
		for _, group := range groups {
			for _, at := range group {
				t := g.Get(at)
				t.Type = palette.Pick(src)
				if d, ok := reroll(g, t, src, palette, opts.Retries, completesGroup); !ok {
					diags = append(diags, d)
				}
			}
		}
	}
}

// reroll redraws t.Type while reject holds, up to retries attempts in total.
func reroll(g *Grid, t *Tile, src Source, palette Palette, retries int, reject func(*Grid, *Tile) bool) (Diagnostic, bool) {
	for attempt := 1; reject(g, t); attempt++ {
		if attempt >= retries {
			return Diagnostic{Kind: RetryExhausted, At: t.Pos, Attempts: attempt}, false
		}
		t.Type = palette.Pick(src)
	}
	return Diagnostic{}, true
}

// completesRun reports whether t forms a straight run of three with the two
// cells above it or the two cells to its left.
func completesRun(g *Grid, t *Tile) bool {
	same := func(dr, dc int) bool {
		n := g.Get(t.Pos.Add(dr, dc))
		return n != nil && n.Type == t.Type
	}
	return (same(0, -1) && same(0, -2)) || (same(-1, 0) && same(-2, 0))
}

// completesGroup reports whether t belongs to a connected group of MinMatch
// or more, or completes a straight run.
func completesGroup(g *Grid, t *Tile) bool {
	return completesRun(g, t) || len(Component(g, t.Pos)) >= MinMatch
}

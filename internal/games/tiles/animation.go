package tiles

import (
	"github.com/Entemena/MATCH3PROTOTYPE/internal/engine"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/grid"
)

// tween plays one engine batch over a fixed number of ticks.
type tween struct {
	batch    engine.Batch
	ticks    int
	duration int
	byTile   map[grid.TileID]engine.Event
}

func newTween(b engine.Batch, duration int) *tween {
	byTile := make(map[grid.TileID]engine.Event, len(b.Events))
	for _, ev := range b.Events {
		byTile[ev.TileID] = ev
	}
	return &tween{batch: b, duration: duration, byTile: byTile}
}

// step advances one tick and reports whether the tween is finished.
func (t *tween) step() bool {
	t.ticks++
	return t.ticks >= t.duration
}

// progress returns 0.0 → 1.0.
func (t *tween) progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return min(1, float64(t.ticks)/float64(t.duration))
}

// event returns the batch event for a tile, if it has one.
func (t *tween) event(id grid.TileID) (engine.Event, bool) {
	ev, ok := t.byTile[id]
	return ev, ok
}

// removed returns the tiles that left the board in this stage.
func (t *tween) removed() []engine.Event {
	var out []engine.Event
	for _, ev := range t.batch.Events {
		if ev.Kind == engine.EventRemove {
			out = append(out, ev)
		}
	}
	return out
}

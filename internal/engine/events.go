package engine

import (
	"fmt"

	"github.com/Entemena/MATCH3PROTOTYPE/internal/grid"
)

// Phase is the resolve loop state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSwapping
	PhaseResolving
	PhaseRefilling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSwapping:
		return "swapping"
	case PhaseResolving:
		return "resolving"
	case PhaseRefilling:
		return "refilling"
	default:
		return "unknown"
	}
}

// EventKind says what happened to a tile.
type EventKind int

const (
	EventMove    EventKind = iota // swap or fall
	EventRemove                   // tile left the board
	EventSpawn                    // fresh tile dropped in from above
	EventPromote                  // tile survived a merge with a new level
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventRemove:
		return "remove"
	case EventSpawn:
		return "spawn"
	case EventPromote:
		return "promote"
	default:
		return "unknown"
	}
}

// Event describes one tile change for the presentation layer.
// Type and Level are the tile's values after the change.
type Event struct {
	TileID grid.TileID
	Kind   EventKind
	From   grid.Coord
	To     grid.Coord
	Type   grid.TileType
	Level  int
}

func (ev Event) String() string {
	return fmt.Sprintf("%s #%d %s->%s", ev.Kind, ev.TileID, ev.From, ev.To)
}

// Batch is everything one stage changed. The engine waits in that stage
// until the batch is acknowledged with Advance.
type Batch struct {
	Stage  Phase
	Depth  int // cascade pass, 0 for the swap itself
	Events []Event
}

// Empty reports whether the batch carries no events.
func (b Batch) Empty() bool {
	return len(b.Events) == 0
}

func moveEvent(t *grid.Tile, from, to grid.Coord) Event {
	return Event{TileID: t.ID, Kind: EventMove, From: from, To: to, Type: t.Type, Level: t.Level}
}

func resolutionEvents(res grid.Resolution) []Event {
	events := make([]Event, 0, res.Matched())
	for _, t := range res.Removed {
		events = append(events, Event{TileID: t.ID, Kind: EventRemove, From: t.Pos, To: t.Pos, Type: t.Type, Level: t.Level})
	}
	for _, p := range res.Promoted {
		t := p.Tile
		events = append(events, Event{TileID: t.ID, Kind: EventPromote, From: t.Pos, To: t.Pos, Type: t.Type, Level: t.Level})
	}
	return events
}

func refillEvents(falls []grid.Fall, spawns []grid.Spawn) []Event {
	events := make([]Event, 0, len(falls)+len(spawns))
	for _, f := range falls {
		events = append(events, moveEvent(f.Tile, f.From, f.To))
	}
	for _, s := range spawns {
		t := s.Tile
		events = append(events, Event{TileID: t.ID, Kind: EventSpawn, From: s.From, To: t.Pos, Type: t.Type, Level: t.Level})
	}
	return events
}

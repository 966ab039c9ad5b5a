package tiles

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateError       GameStateType = "error"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "match" or "merge"
	Score     int
	Swaps     int
	MovesLeft int // -1 when endless
	MaxLevel  int
	Phase     string
	Board     string // rows of "type" or "type^level", "." for empty
	Hash      uint64
	Cursor    [2]int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Mode:      g.mode.String(),
		MovesLeft: g.movesLeft,
		Cursor:    [2]int{g.cursor.Row, g.cursor.Col},
	}
	if g.eng == nil {
		s.State = StateError
		return s
	}

	st := g.eng.Stats()
	s.Score = st.Score
	s.Swaps = st.Swaps
	s.MaxLevel = st.MaxLevel
	s.Phase = g.eng.Phase().String()
	s.Board = g.eng.Grid().String()
	s.Hash = g.eng.Grid().Hash()

	switch {
	case g.tooSmall:
		s.State = StatePausedSmall
	case g.gameOver:
		s.State = StateGameOver
	case g.paused:
		s.State = StatePaused
	case g.eng.Locked():
		s.State = StateResolving
	default:
		s.State = StatePlaying
	}
	return s
}

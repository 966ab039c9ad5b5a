// Package tiles implements the match-3 and merge-3 games on top of the
// resolution engine. The game owns timing and presentation; the engine owns
// the board.
package tiles

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/Entemena/MATCH3PROTOTYPE/internal/config"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/core"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/engine"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/grid"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/registry"
)

// Game IDs.
const (
	MatchID = "match3"
	MergeID = "merge3"
)

// Package-level defaults, set once at startup.
var (
	defaultConfig = config.DefaultTilesConfig()
	defaultLogger = log.New(io.Discard)
)

// SetDefaultConfig sets the configuration new games start with.
func SetDefaultConfig(cfg config.TilesConfig) {
	defaultConfig = cfg
}

// SetLogger sets the logger new games hand to their engines.
func SetLogger(l *log.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

func init() {
	registry.Register(MatchID, func() registry.Game {
		return New(engine.ModeMatch)
	})
	registry.Register(MergeID, func() registry.Game {
		return New(engine.ModeMerge)
	})
}

// Game is one tile puzzle session.
type Game struct {
	mode   engine.Mode
	cfg    config.TilesConfig
	log    *log.Logger
	visual VisualResolver
	eng    *engine.Engine
	err    error
	tick   uint64

	screenW int
	screenH int
	layout  layout

	cursor    grid.Coord
	movesLeft int // -1 when endless
	anim      *tween
	combo     int // depth of the last finished cascade

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a game for the given mode with the package defaults.
func New(mode engine.Mode) *Game {
	return &Game{
		mode:   mode,
		cfg:    defaultConfig,
		log:    defaultLogger,
		visual: DefaultVisuals{},
	}
}

// Configure replaces the configuration used by the next Reset.
func (g *Game) Configure(cfg config.TilesConfig) {
	g.cfg = cfg
}

// SetVisuals replaces the glyph and color mapping.
func (g *Game) SetVisuals(v VisualResolver) {
	if v != nil {
		g.visual = v
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == engine.ModeMerge {
		return MergeID
	}
	return MatchID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == engine.ModeMerge {
		return "Merge-3"
	}
	return "Match-3"
}

// Reset builds a new board. A configuration error leaves the game over with
// the error reported by Err.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.tick = 0
	g.screenW, g.screenH = rc.ScreenW, rc.ScreenH
	g.anim = nil
	g.combo = 0
	g.gameOver = false
	g.paused = false

	board := g.cfg.Board(g.mode)
	g.eng, g.err = engine.New(board.Engine(g.mode, rc.Seed), engine.WithLogger(g.log))
	if g.err != nil {
		g.log.Error("cannot start game", "game", g.ID(), "err", g.err)
		g.gameOver = true
		return
	}

	g.movesLeft = board.Moves
	if board.Moves == 0 {
		g.movesLeft = -1
	}
	g.cursor = grid.C(board.Rows/2, board.Cols/2)
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Err returns the error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Resize adapts the layout to a new screen size. An animation in flight is
// dropped and its stage acknowledged; the board itself is unaffected.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.eng == nil {
		return
	}
	g.layout, g.tooSmall = computeLayout(g.eng.Grid().Rows(), g.eng.Grid().Cols(), w, h)
	if g.anim != nil {
		g.anim = nil
		g.advance()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.eng == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if g.anim != nil {
		if g.anim.step() {
			g.anim = nil
			g.advance()
		}
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	rows, cols := g.eng.Grid().Rows(), g.eng.Grid().Cols()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, rows-1)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, rows-1)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 0, cols-1)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 0, cols-1)
	}

	if in.Has(core.ActionDeselect) {
		g.eng.Deselect()
	}
	if in.Has(core.ActionSelect) {
		g.activate(g.cursor)
	}
}

// Click activates the cell under screen position (x, y). It reports whether
// the click was taken; clicks off the board or while resolving are not.
func (g *Game) Click(x, y int) bool {
	if g.eng == nil || g.eng.Locked() || g.tooSmall || g.paused || g.gameOver {
		return false
	}
	c, ok := g.layout.cellAt(x, y)
	if !ok {
		return false
	}
	g.cursor = c
	g.activate(c)
	return true
}

func (g *Game) activate(c grid.Coord) {
	out, err := g.eng.Activate(c)
	switch {
	case errors.Is(err, engine.ErrBusy):
		return
	case err != nil:
		g.log.Debug("activate", "cell", c, "err", err)
		return
	}
	if out != engine.OutcomeSwapped {
		return
	}
	if g.movesLeft > 0 {
		g.movesLeft--
	}
	if b, ok := g.eng.Pending(); ok {
		g.startTween(b)
	}
}

// advance acknowledges the finished stage and starts animating the next one.
func (g *Game) advance() {
	b, ok := g.eng.Advance()
	for ok && g.durationFor(b.Stage) == 0 {
		b, ok = g.eng.Advance()
	}
	if ok {
		g.startTween(b)
		return
	}

	rep := g.eng.LastReport()
	g.combo = rep.Depth
	if g.movesLeft == 0 {
		g.gameOver = true
	}
}

func (g *Game) startTween(b engine.Batch) {
	d := g.durationFor(b.Stage)
	if d == 0 {
		g.anim = nil
		g.advance()
		return
	}
	g.anim = newTween(b, d)
}

func (g *Game) durationFor(stage engine.Phase) int {
	a := g.cfg.Animation
	switch stage {
	case engine.PhaseSwapping:
		return a.SwapTicks
	case engine.PhaseResolving:
		return a.ClearTicks
	case engine.PhaseRefilling:
		return a.FallTicks
	default:
		return 0
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
	if g.eng != nil {
		st.Score = g.eng.Stats().Score
		st.Busy = g.eng.Locked()
	}
	return st
}

// ScoreDetails reports the swap count and highest tile level of the run.
func (g *Game) ScoreDetails() (swaps, maxLevel int) {
	if g.eng == nil {
		return 0, 0
	}
	st := g.eng.Stats()
	return st.Swaps, st.MaxLevel
}

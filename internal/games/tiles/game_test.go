package tiles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Entemena/MATCH3PROTOTYPE/internal/config"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/core"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/engine"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/grid"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/registry"
)

func newGame(t *testing.T, mode engine.Mode, modify func(*config.TilesConfig)) *Game {
	t.Helper()
	cfg := config.DefaultTilesConfig()
	if modify != nil {
		modify(&cfg)
	}
	g := New(mode)
	g.Configure(cfg)
	rc := core.DefaultConfig()
	rc.Seed = 12345
	g.Reset(rc)
	require.NoError(t, g.Err())
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func settle(t *testing.T, g *Game) {
	t.Helper()
	for range 10000 {
		if !g.State().Busy {
			return
		}
		press(g)
	}
	t.Fatal("board never settled")
}

// swapRight swaps the cell under the cursor with its right neighbor.
func swapRight(g *Game) {
	press(g, core.ActionSelect)
	press(g, core.ActionRight)
	press(g, core.ActionSelect)
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{MatchID, MergeID} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		require.Equal(t, id, g.ID())
		_, clickable := g.(registry.Clickable)
		require.True(t, clickable)
		_, resizable := g.(registry.Resizable)
		require.True(t, resizable)
	}
}

func TestCursorClamps(t *testing.T) {
	g := newGame(t, engine.ModeMatch, nil)
	for range 20 {
		press(g, core.ActionUp)
		press(g, core.ActionLeft)
	}
	require.Equal(t, grid.C(0, 0), g.cursor)

	for range 20 {
		press(g, core.ActionDown)
		press(g, core.ActionRight)
	}
	require.Equal(t, grid.C(7, 7), g.cursor)
}

func TestSwapLocksUntilSettled(t *testing.T) {
	for _, mode := range []engine.Mode{engine.ModeMatch, engine.ModeMerge} {
		g := newGame(t, mode, nil)
		g.cursor = grid.C(4, 2)
		moves := g.movesLeft

		swapRight(g)
		require.True(t, g.State().Busy, "swap should start an animation")
		require.Equal(t, moves-1, g.movesLeft)

		press(g, core.ActionLeft)
		require.Equal(t, grid.C(4, 3), g.cursor, "input is ignored while resolving")

		settle(t, g)
		require.Equal(t, engine.PhaseIdle, g.eng.Phase())
		require.NoError(t, g.eng.Grid().CheckOccupancy())
		require.Equal(t, 1, g.eng.Stats().Swaps)
	}
}

func TestZeroTickAnimationsResolveImmediately(t *testing.T) {
	g := newGame(t, engine.ModeMatch, func(c *config.TilesConfig) {
		c.Animation = config.AnimationConfig{}
	})
	g.cursor = grid.C(0, 0)
	swapRight(g)
	require.False(t, g.State().Busy)
	require.Equal(t, 1, g.eng.Stats().Swaps)
}

func TestClick(t *testing.T) {
	g := newGame(t, engine.ModeMerge, nil)
	x, y := g.layout.cellOrigin(grid.C(2, 5))

	require.True(t, g.Click(x+1, y))
	sel, ok := g.eng.Selected()
	require.True(t, ok)
	require.Equal(t, grid.C(2, 5), sel)
	require.Equal(t, grid.C(2, 5), g.cursor)

	require.False(t, g.Click(0, 0), "HUD corner is off the board")

	require.True(t, g.Click(x+cellWidth, y))
	require.True(t, g.State().Busy)
	require.False(t, g.Click(x, y), "clicks are refused while resolving")
	settle(t, g)
}

func TestResizeCancelsAnimation(t *testing.T) {
	g := newGame(t, engine.ModeMatch, nil)
	g.cursor = grid.C(3, 3)
	swapRight(g)
	require.NotNil(t, g.anim)
	stage := g.anim.batch.Stage

	g.Resize(100, 40)
	if g.anim != nil {
		require.NotEqual(t, stage, g.anim.batch.Stage, "resize should acknowledge the running stage")
	}
	settle(t, g)
	require.NoError(t, g.eng.Grid().CheckOccupancy())
	require.Equal(t, 100, g.screenW)
}

func TestResizeTooSmall(t *testing.T) {
	g := newGame(t, engine.ModeMatch, nil)
	g.Resize(20, 10)
	require.True(t, g.State().Paused)
	require.Equal(t, StatePausedSmall, g.Snapshot().State)

	g.Resize(80, 24)
	require.False(t, g.State().Paused)
}

func TestMovesBudgetEndsGame(t *testing.T) {
	g := newGame(t, engine.ModeMatch, func(c *config.TilesConfig) {
		c.Match.Moves = 1
	})
	g.cursor = grid.C(5, 5)
	swapRight(g)
	settle(t, g)

	require.True(t, g.State().GameOver)
	require.Equal(t, 0, g.movesLeft)
	require.Equal(t, StateGameOver, g.Snapshot().State)

	before := g.Snapshot().Hash
	g.cursor = grid.C(1, 1)
	swapRight(g)
	require.Equal(t, before, g.Snapshot().Hash, "no swaps after game over")
}

func TestEndlessGame(t *testing.T) {
	g := newGame(t, engine.ModeMerge, func(c *config.TilesConfig) {
		c.Merge.Moves = 0
	})
	require.Equal(t, -1, g.movesLeft)
	for i := range 5 {
		g.cursor = grid.C(i, 0)
		swapRight(g)
		settle(t, g)
	}
	require.False(t, g.State().GameOver)
	require.Equal(t, -1, g.movesLeft)
}

func TestConfigurationErrorStopsGame(t *testing.T) {
	cfg := config.DefaultTilesConfig()
	cfg.Match.Types = 0
	g := New(engine.ModeMatch)
	g.Configure(cfg)
	g.Reset(core.DefaultConfig())

	require.ErrorIs(t, g.Err(), engine.ErrConfiguration)
	require.True(t, g.State().GameOver)
	require.Equal(t, StateError, g.Snapshot().State)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	require.Contains(t, screen.String(), "Cannot start game")
	require.False(t, g.Click(40, 10))
}

func TestDeterministicSnapshots(t *testing.T) {
	play := func() Snapshot {
		g := newGame(t, engine.ModeMerge, nil)
		for i := range 4 {
			g.cursor = grid.C(i+2, i)
			swapRight(g)
			settle(t, g)
		}
		return g.Snapshot()
	}
	require.Equal(t, play(), play())
}

func TestRender(t *testing.T) {
	g := newGame(t, engine.ModeMerge, nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	require.Contains(t, out, "Merge-3")
	require.Contains(t, out, "Score: 0")
	require.Contains(t, out, "Moves: 40")
	require.Contains(t, out, "Max level: 1")

	b := g.layout.board
	require.Equal(t, '┌', screen.Get(b.X-1, b.Y-1))
	x, y := g.layout.cellOrigin(g.cursor)
	require.Equal(t, '[', screen.Get(x, y))
	require.True(t, strings.ContainsRune(out, '1'), "merge tiles show their level")
}

func TestDefaultVisuals(t *testing.T) {
	v := DefaultVisuals{}
	a, b := v.Resolve(0, 1), v.Resolve(1, 1)
	require.NotEqual(t, a.Glyph, b.Glyph)
	require.NotEqual(t, a.Color, b.Color)
	require.Equal(t, a, v.Resolve(grid.TileType(len(glyphs)), 1))
	require.Equal(t, core.ColorBrightWhite, v.Resolve(0, 12).Color)

	g := newGame(t, engine.ModeMatch, nil)
	g.SetVisuals(VisualFunc(func(grid.TileType, int) Visual {
		return Visual{Glyph: 'x', Color: core.ColorGray}
	}))
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	x, y := g.layout.cellOrigin(grid.C(0, 0))
	require.Equal(t, 'x', screen.Get(x+1, y))
}

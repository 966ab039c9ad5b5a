package tiles

import (
	"fmt"
	"math"

	"github.com/Entemena/MATCH3PROTOTYPE/internal/core"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/engine"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/grid"
)

const (
	cellWidth = 4 // Width of each cell in characters
	hudHeight = 3
)

// layout places the board on screen. The board frame surrounds the cells.
type layout struct {
	board core.Rect // cell area, frame excluded
	cellH int
	rows  int
	cols  int
}

// computeLayout centers the board below the HUD. Cells are two lines tall
// when the screen has room, one otherwise.
func computeLayout(rows, cols, screenW, screenH int) (layout, bool) {
	l := layout{rows: rows, cols: cols, cellH: 2}
	if hudHeight+rows*2+2 > screenH {
		l.cellH = 1
	}
	w, h := cols*cellWidth, rows*l.cellH
	l.board = core.NewRect((screenW-w)/2, hudHeight+1, w, h)
	tooSmall := w+2 > screenW || hudHeight+h+2 > screenH
	return l, tooSmall
}

// cellOrigin returns the top-left screen position of a cell.
func (l layout) cellOrigin(c grid.Coord) (int, int) {
	return l.board.X + c.Col*cellWidth, l.board.Y + c.Row*l.cellH
}

// cellAt maps a screen position back to a cell.
func (l layout) cellAt(x, y int) (grid.Coord, bool) {
	if !l.board.Contains(x, y) {
		return grid.Coord{}, false
	}
	return grid.C((y-l.board.Y)/l.cellH, (x-l.board.X)/cellWidth), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(g.screenH/2, "Cannot start game")
		dst.DrawTextCentered(g.screenH/2+1, g.err.Error())
		return
	}
	if g.eng == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderOverlays(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen) {
	b := g.layout.board
	dst.DrawTextCentered(0, g.Title())

	st := g.eng.Stats()
	dst.DrawText(b.X, 1, fmt.Sprintf("Score: %d", st.Score))

	moves := "Moves: ∞"
	if g.movesLeft >= 0 {
		moves = fmt.Sprintf("Moves: %d", g.movesLeft)
	}
	dst.DrawText(b.Right()-len([]rune(moves)), 1, moves)

	var info string
	if g.mode == engine.ModeMerge {
		info = fmt.Sprintf("Max level: %d", st.MaxLevel)
	}
	if g.combo > 1 {
		if info != "" {
			info += "  "
		}
		info += fmt.Sprintf("Combo x%d", g.combo)
	}
	if info != "" {
		dst.DrawTextCentered(2, info)
	}
}

func (g *Game) renderBoard(dst *core.Screen) {
	b := g.layout.board
	dst.DrawBox(core.NewRect(b.X-1, b.Y-1, b.W+2, b.H+2), core.ColorGray)

	board := g.eng.Grid()
	for _, t := range board.Tiles() {
		row, col := float64(t.Pos.Row), float64(t.Pos.Col)
		flash := false
		if g.anim != nil {
			if ev, ok := g.anim.event(t.ID); ok {
				p := g.anim.progress()
				row = core.Lerp(float64(ev.From.Row), float64(ev.To.Row), p)
				col = core.Lerp(float64(ev.From.Col), float64(ev.To.Col), p)
				flash = ev.Kind == engine.EventPromote
			}
		}
		g.drawTile(dst, row, col, t.Type, t.Level, flash)
	}

	// Tiles removed in this stage blink out at their old cells.
	if g.anim != nil && g.anim.ticks%4 < 2 {
		for _, ev := range g.anim.removed() {
			x, y := g.layout.cellOrigin(ev.From)
			dst.SetColored(x+1, y, '✶', core.ColorBrightWhite)
		}
	}

	g.renderCursor(dst)
}

// drawTile draws a tile at a possibly fractional cell position. Positions
// above the board are skipped.
func (g *Game) drawTile(dst *core.Screen, row, col float64, t grid.TileType, level int, flash bool) {
	r, c := int(math.Round(row)), int(math.Round(col))
	if r < 0 {
		return
	}
	x, y := g.layout.cellOrigin(grid.C(r, c))
	v := g.visual.Resolve(t, level)
	color := v.Color
	if flash && g.tick%4 < 2 {
		color = core.ColorBrightWhite
	}
	dst.SetColored(x+1, y, v.Glyph, color)
	if g.mode == engine.ModeMerge && level >= 1 && level <= 9 {
		dst.SetColored(x+2, y, rune('0'+level), color)
	}
}

func (g *Game) renderCursor(dst *core.Screen) {
	left, right := '[', ']'
	color := core.ColorWhite
	if sel, ok := g.eng.Selected(); ok {
		x, y := g.layout.cellOrigin(sel)
		dst.SetColored(x, y, '<', core.ColorBrightYellow)
		dst.SetColored(x+cellWidth-1, y, '>', core.ColorBrightYellow)
		if sel == g.cursor {
			return
		}
	}
	x, y := g.layout.cellOrigin(g.cursor)
	dst.SetColored(x, y, left, color)
	dst.SetColored(x+cellWidth-1, y, right, color)
}

func (g *Game) renderOverlays(dst *core.Screen) {
	b := g.layout.board
	midY := b.Y + b.H/2

	switch {
	case g.gameOver:
		st := g.eng.Stats()
		dst.DrawTextCentered(midY-1, " GAME OVER ")
		dst.DrawTextCentered(midY, fmt.Sprintf(" Cleared %d tiles in %d swaps ", st.Score, st.Swaps))
		dst.DrawTextCentered(midY+1, " R to restart ")
	case g.paused:
		dst.DrawTextCentered(midY, " PAUSED ")
	}
}
